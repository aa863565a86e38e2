// Package ui renders swman results in terminal (rich), text (plain) and
// JSON formats. Rendering is pure formatting: callers hand over finished
// results and decide exit codes themselves.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/swman/pkg/types"
	"github.com/arthur-debert/swman/pkg/ui/json"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderCheck renders pending-update counts per manager
	RenderCheck(results *types.CheckResults) error

	// RenderUpdates renders one update batch
	RenderUpdates(results []types.UpdateResult, dryRun bool) error

	// RenderManagers renders the manager listing
	RenderManagers(infos []types.ManagerInfo) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return NewTableRenderer(output, true), nil
	case FormatText:
		return NewTableRenderer(output, false), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
