package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/swman/pkg/types"
)

// Check table labels
const (
	LabelUpdatesAvailable = "Updates Available"
	LabelUpToDate         = "Up to date"
	LabelUnknown          = "Unknown"
)

var (
	checkHeader   = []string{"Manager", "Status", "Updates"}
	updateHeader  = []string{"Manager", "Status", "Message", "Duration"}
	managerHeader = []string{"Manager", "Kind", "Available"}
)

// CheckStatus is the label shown for a check result
func CheckStatus(r types.CheckResult) string {
	switch {
	case r.IsIndeterminate():
		return LabelUnknown
	case r.HasUpdates():
		return LabelUpdatesAvailable
	default:
		return LabelUpToDate
	}
}

// CheckCount renders the updates column, "-" when indeterminate
func CheckCount(r types.CheckResult) string {
	n, ok := r.Count()
	if !ok {
		return "-"
	}
	return strconv.Itoa(n)
}

// Glyph returns the status marker for an update result
func Glyph(s types.UpdateStatus) string {
	switch s {
	case types.StatusSuccess:
		return "✓"
	case types.StatusFailed:
		return "✗"
	case types.StatusSkipped:
		return "○"
	case types.StatusNotAvailable:
		return "-"
	default:
		return "?"
	}
}

// FormatDuration renders seconds with one decimal
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// SummaryLine is the footer of an update table
func SummaryLine(s types.Summary) string {
	parts := []string{
		fmt.Sprintf("%d succeeded", s.Succeeded),
		fmt.Sprintf("%d failed", s.Failed),
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", s.Skipped))
	}
	if s.NotAvailable > 0 {
		parts = append(parts, fmt.Sprintf("%d not available", s.NotAvailable))
	}
	return "Summary: " + strings.Join(parts, ", ")
}

// TotalLine is the footer of a check table
func TotalLine(results *types.CheckResults) string {
	return fmt.Sprintf("Total updates available: %d", results.TotalUpdates())
}

// firstLine keeps table rows single-line
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
