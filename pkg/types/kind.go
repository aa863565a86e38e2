package types

import (
	"fmt"
	"strings"
)

// Kind classifies a manager for selective operations
type Kind string

const (
	KindSystem   Kind = "system"
	KindLanguage Kind = "language"
	KindPlugin   Kind = "plugin"
	KindTool     Kind = "tool"
)

// AllKinds lists the kinds in presentation order
var AllKinds = []Kind{KindSystem, KindLanguage, KindTool, KindPlugin}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a kind name, case-insensitively
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown manager kind: %s", s)
}
