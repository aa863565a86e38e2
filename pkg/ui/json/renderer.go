// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/swman/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}
}

// RenderCheck renders an object of name to [has_updates, count]
func (r *Renderer) RenderCheck(results *types.CheckResults) error {
	return r.encoder.Encode(results)
}

// RenderUpdates renders an array of plain result objects
func (r *Renderer) RenderUpdates(results []types.UpdateResult, dryRun bool) error {
	if results == nil {
		results = []types.UpdateResult{}
	}
	return r.encoder.Encode(results)
}

// RenderManagers renders the registered managers
func (r *Renderer) RenderManagers(infos []types.ManagerInfo) error {
	if infos == nil {
		infos = []types.ManagerInfo{}
	}
	return r.encoder.Encode(infos)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
