package types

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// UpdateStatus is the terminal outcome of one update attempt
type UpdateStatus string

const (
	StatusSuccess      UpdateStatus = "success"
	StatusFailed       UpdateStatus = "failed"
	StatusSkipped      UpdateStatus = "skipped"
	StatusNotAvailable UpdateStatus = "not_available"
)

// Valid reports whether s is one of the known statuses
func (s UpdateStatus) Valid() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusSkipped, StatusNotAvailable:
		return true
	}
	return false
}

// UpdateResult is produced once per manager per update invocation
type UpdateResult struct {
	Name     string
	Status   UpdateStatus
	Message  string
	Duration time.Duration
}

// updateResultJSON is the wire shape, duration in float seconds
type updateResultJSON struct {
	Name     string       `json:"name"`
	Status   UpdateStatus `json:"status"`
	Message  string       `json:"message"`
	Duration float64      `json:"duration"`
}

// MarshalJSON encodes the result with the duration in seconds
func (r UpdateResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(updateResultJSON{
		Name:     r.Name,
		Status:   r.Status,
		Message:  r.Message,
		Duration: r.Duration.Seconds(),
	})
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON
func (r *UpdateResult) UnmarshalJSON(data []byte) error {
	var raw updateResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Status.Valid() {
		return fmt.Errorf("unknown update status %q", raw.Status)
	}
	if raw.Duration < 0 {
		return fmt.Errorf("negative duration %v", raw.Duration)
	}
	*r = UpdateResult{
		Name:     raw.Name,
		Status:   raw.Status,
		Message:  raw.Message,
		Duration: time.Duration(math.Round(raw.Duration * float64(time.Second))),
	}
	return nil
}

// Succeeded builds a success result
func Succeeded(name, message string, d time.Duration) UpdateResult {
	return UpdateResult{Name: name, Status: StatusSuccess, Message: message, Duration: d}
}

// Failed builds a failed result
func Failed(name, message string, d time.Duration) UpdateResult {
	return UpdateResult{Name: name, Status: StatusFailed, Message: message, Duration: d}
}

// Summary counts outcomes of an update batch
type Summary struct {
	Total        int
	Succeeded    int
	Failed       int
	Skipped      int
	NotAvailable int
}

// Summarize tallies a batch of results
func Summarize(results []UpdateResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusSuccess:
			s.Succeeded++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		case StatusNotAvailable:
			s.NotAvailable++
		}
	}
	return s
}

// HasFailures reports whether any result failed
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}
