package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// IndeterminateCount is the wire value for an unknown count
const IndeterminateCount = -1

// CheckResult is the outcome of a non-mutating pending-update query.
// The zero value is a confirmed "no updates".
type CheckResult struct {
	count         int
	indeterminate bool
}

// NoUpdates is a confirmed zero
func NoUpdates() CheckResult {
	return CheckResult{}
}

// Counted reports n pending updates. Negative n is clamped to zero.
func Counted(n int) CheckResult {
	if n < 0 {
		n = 0
	}
	return CheckResult{count: n}
}

// Indeterminate reports that the backend cannot tell without mutating state
func Indeterminate() CheckResult {
	return CheckResult{indeterminate: true}
}

// IsIndeterminate reports whether the count is unknown
func (c CheckResult) IsIndeterminate() bool {
	return c.indeterminate
}

// HasUpdates is true only for a known, positive count
func (c CheckResult) HasUpdates() bool {
	return !c.indeterminate && c.count > 0
}

// Count returns the known count and whether it is known
func (c CheckResult) Count() (int, bool) {
	if c.indeterminate {
		return 0, false
	}
	return c.count, true
}

// Pair returns the legacy (has_updates, count) pair, count -1 when indeterminate
func (c CheckResult) Pair() (bool, int) {
	if c.indeterminate {
		return false, IndeterminateCount
	}
	return c.HasUpdates(), c.count
}

// String is used in log lines
func (c CheckResult) String() string {
	if c.indeterminate {
		return "indeterminate"
	}
	return fmt.Sprintf("%d", c.count)
}

// MarshalJSON encodes the result as [has_updates, count]
func (c CheckResult) MarshalJSON() ([]byte, error) {
	has, n := c.Pair()
	return json.Marshal([]interface{}{has, n})
}

// UnmarshalJSON decodes [has_updates, count]
func (c *CheckResult) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("check result must be a 2-element array, got %d", len(pair))
	}
	var has bool
	if err := json.Unmarshal(pair[0], &has); err != nil {
		return fmt.Errorf("check result has_updates: %w", err)
	}
	var n int
	if err := json.Unmarshal(pair[1], &n); err != nil {
		return fmt.Errorf("check result count: %w", err)
	}
	switch {
	case n == IndeterminateCount:
		*c = Indeterminate()
	case n < 0:
		return fmt.Errorf("invalid check count %d", n)
	default:
		*c = Counted(n)
	}
	return nil
}

// NamedCheck pairs a manager name with its check result
type NamedCheck struct {
	Name   string
	Result CheckResult
}

// CheckResults is an ordered name -> CheckResult mapping
type CheckResults struct {
	entries []NamedCheck
	index   map[string]int
}

// NewCheckResults creates an empty collection
func NewCheckResults() *CheckResults {
	return &CheckResults{index: make(map[string]int)}
}

// Set adds or replaces the result for name, keeping first insertion order
func (r *CheckResults) Set(name string, result CheckResult) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.entries[i].Result = result
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, NamedCheck{Name: name, Result: result})
}

// Get returns the result for name
func (r *CheckResults) Get(name string) (CheckResult, bool) {
	if r == nil {
		return CheckResult{}, false
	}
	i, ok := r.index[name]
	if !ok {
		return CheckResult{}, false
	}
	return r.entries[i].Result, true
}

// Len returns the number of entries
func (r *CheckResults) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries returns the entries in insertion order
func (r *CheckResults) Entries() []NamedCheck {
	if r == nil {
		return nil
	}
	out := make([]NamedCheck, len(r.entries))
	copy(out, r.entries)
	return out
}

// TotalUpdates sums the known counts. Indeterminate entries are excluded.
func (r *CheckResults) TotalUpdates() int {
	total := 0
	for _, e := range r.Entries() {
		if n, ok := e.Result.Count(); ok {
			total += n
		}
	}
	return total
}

// Indeterminate returns the names whose count is unknown
func (r *CheckResults) Indeterminate() []string {
	var names []string
	for _, e := range r.Entries() {
		if e.Result.IsIndeterminate() {
			names = append(names, e.Name)
		}
	}
	return names
}

// MarshalJSON encodes an object keyed by manager name, in insertion order
func (r *CheckResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Result)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of name -> [has_updates, count].
// Key order follows the document.
func (r *CheckResults) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("check results must be a JSON object")
	}
	*r = CheckResults{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var result CheckResult
		if err := dec.Decode(&result); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		r.Set(name, result)
	}
	_, err = dec.Token()
	return err
}
