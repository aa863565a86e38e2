package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/swman/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how results are rendered
type Format int

const (
	// FormatAuto picks term or text from the output stream
	FormatAuto Format = iota
	// FormatTerminal is a styled table
	FormatTerminal
	// FormatText is an unstyled table
	FormatText
	// FormatJSON is machine-readable output
	FormatJSON
)

// formatNames maps accepted names, aliases included, to formats
var formatNames = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

// FormatNames are the canonical names, indexed by Format
var FormatNames = []string{"auto", "term", "text", "json"}

func (f Format) String() string {
	if f >= FormatAuto && int(f) < len(FormatNames) {
		return FormatNames[f]
	}
	return "unknown"
}

// ParseFormat accepts a canonical name or alias, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "%q is not one of %s", s, strings.Join(FormatNames, ", ")).
		WithDetail("format", s)
}

// fdWriter is an output stream backed by a file descriptor
type fdWriter interface {
	Fd() uintptr
}

// DetectFormat is term for a colour-capable terminal and text otherwise,
// including whenever NO_COLOR is set
func DetectFormat(output fdWriter) Format {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return FormatText
	case !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()):
		return FormatText
	case termenv.ColorProfile() == termenv.Ascii:
		return FormatText
	}
	return FormatTerminal
}

// Resolve turns FormatAuto into a concrete format for w. Writers without
// a file descriptor (buffers, pipes wrapped in Go writers) get text.
func Resolve(format Format, w io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if out, ok := w.(fdWriter); ok {
		return DetectFormat(out)
	}
	return FormatText
}
