package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/swman/pkg/types"
	"github.com/arthur-debert/swman/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// TableRenderer draws pterm tables. Unstyled output carries no escape
// codes and is what text mode and pipes get.
type TableRenderer struct {
	output io.Writer
	styled bool
}

// NewTableRenderer creates a table renderer
func NewTableRenderer(w io.Writer, styled bool) *TableRenderer {
	return &TableRenderer{output: w, styled: styled}
}

func (r *TableRenderer) style(name, s string) string {
	if !r.styled {
		return s
	}
	return styles.Render(name, s)
}

func (r *TableRenderer) table(header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)

	printer := pterm.DefaultTable.WithHasHeader().WithData(data)
	if !r.styled {
		plain := pterm.NewStyle()
		printer = printer.
			WithStyle(plain).
			WithHeaderStyle(plain).
			WithSeparatorStyle(plain)
	}

	out, err := printer.Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(r.output, strings.TrimRight(out, "\n"))
	return err
}

func (r *TableRenderer) line(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// RenderCheck renders check results with a total footer
func (r *TableRenderer) RenderCheck(results *types.CheckResults) error {
	if results.Len() == 0 {
		return r.RenderMessage("No package managers available")
	}

	rows := make([][]string, 0, results.Len())
	for _, e := range results.Entries() {
		status := CheckStatus(e.Result)
		switch status {
		case LabelUpdatesAvailable:
			status = r.style("Count", status)
		case LabelUnknown:
			status = r.style("Muted", status)
		default:
			status = r.style("Success", status)
		}
		rows = append(rows, []string{e.Name, status, CheckCount(e.Result)})
	}
	if err := r.table(checkHeader, rows); err != nil {
		return err
	}

	if err := r.line(""); err != nil {
		return err
	}
	if err := r.line(r.style("Bold", TotalLine(results))); err != nil {
		return err
	}
	if unknown := results.Indeterminate(); len(unknown) > 0 {
		return r.line(r.style("Muted", "Unknown for: "+strings.Join(unknown, ", ")))
	}
	return nil
}

// RenderUpdates renders update results with a summary footer
func (r *TableRenderer) RenderUpdates(results []types.UpdateResult, dryRun bool) error {
	if dryRun {
		if err := r.line(r.style("DryRunBanner", "Dry run: no changes made")); err != nil {
			return err
		}
	}
	if len(results) == 0 {
		return r.RenderMessage("No package managers available")
	}

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		status := Glyph(res.Status) + " " + string(res.Status)
		switch res.Status {
		case types.StatusSuccess:
			status = r.style("Success", status)
		case types.StatusFailed:
			status = r.style("Error", status)
		default:
			status = r.style("Muted", status)
		}
		rows = append(rows, []string{res.Name, status, firstLine(res.Message), FormatDuration(res.Duration)})
	}
	if err := r.table(updateHeader, rows); err != nil {
		return err
	}

	summary := types.Summarize(results)
	if err := r.line(""); err != nil {
		return err
	}
	line := SummaryLine(summary)
	if summary.HasFailures() {
		return r.line(r.style("Error", line))
	}
	return r.line(r.style("Bold", line))
}

// RenderManagers renders the registered managers
func (r *TableRenderer) RenderManagers(infos []types.ManagerInfo) error {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		avail := yesNo(info.Available)
		if !info.Available {
			avail = r.style("Muted", avail)
		}
		rows = append(rows, []string{info.Name, string(info.Kind), avail})
	}
	return r.table(managerHeader, rows)
}

// RenderError renders an error
func (r *TableRenderer) RenderError(err error) error {
	return r.line(r.style("Error", "Error: ") + err.Error())
}

// RenderMessage renders a simple message
func (r *TableRenderer) RenderMessage(msg string) error {
	return r.line(msg)
}
