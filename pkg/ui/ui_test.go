package ui_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/arthur-debert/swman/pkg/types"
	"github.com/arthur-debert/swman/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

// row matches table cells separated by pterm's " | " with any padding
func row(cells ...string) *regexp.Regexp {
	pattern := ""
	for i, c := range cells {
		if i > 0 {
			pattern += `\s*\|\s*`
		}
		pattern += regexp.QuoteMeta(c)
	}
	return regexp.MustCompile(pattern)
}

func sampleChecks() *types.CheckResults {
	results := types.NewCheckResults()
	results.Set("pkgmgrA", types.Counted(7))
	results.Set("pkgmgrB", types.NoUpdates())
	results.Set("pluginX", types.Indeterminate())
	return results
}

func textRenderer(t *testing.T) (ui.Renderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	return r, &buf
}

func TestCheckTable(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatText, ui.FormatTerminal} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			r, err := ui.NewRenderer(format, &buf)
			require.NoError(t, err)

			require.NoError(t, r.RenderCheck(sampleChecks()))
			out := plain(buf.String())

			assert.Regexp(t, row("Manager", "Status", "Updates"), out)
			assert.Regexp(t, row("pkgmgrA", "Updates Available", "7"), out)
			assert.Regexp(t, row("pkgmgrB", "Up to date", "0"), out)
			assert.Regexp(t, row("pluginX", "Unknown", "-"), out)
			assert.Contains(t, out, "Total updates available: 7")
			assert.Contains(t, out, "Unknown for: pluginX")
		})
	}
}

func TestTextOutputHasNoEscapes(t *testing.T) {
	r, buf := textRenderer(t)
	require.NoError(t, r.RenderCheck(sampleChecks()))
	require.NoError(t, r.RenderUpdates([]types.UpdateResult{
		types.Failed("a", "boom", time.Second),
	}, false))

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestCheckTableEmpty(t *testing.T) {
	r, buf := textRenderer(t)
	require.NoError(t, r.RenderCheck(types.NewCheckResults()))
	assert.Contains(t, buf.String(), "No package managers available")
}

func TestUpdateTable(t *testing.T) {
	r, buf := textRenderer(t)
	results := []types.UpdateResult{
		types.Succeeded("pacman", "System packages updated", 12340*time.Millisecond),
		types.Failed("yay", "yay -Sua --noconfirm timed out after 30m0s", 1800*time.Second),
		{Name: "uv", Status: types.StatusSkipped, Message: "skipped"},
		{Name: "lazy", Status: types.StatusNotAvailable, Message: "not installed"},
	}

	require.NoError(t, r.RenderUpdates(results, false))
	out := plain(buf.String())

	assert.Regexp(t, row("Manager", "Status", "Message", "Duration"), out)
	assert.Regexp(t, row("pacman", "✓ success", "System packages updated", "12.3s"), out)
	assert.Regexp(t, row("yay", "✗ failed", "yay -Sua --noconfirm timed out after 30m0s", "1800.0s"), out)
	assert.Regexp(t, row("uv", "○ skipped"), out)
	assert.Regexp(t, row("lazy", "- not_available"), out)
	assert.Contains(t, out, "Summary: 1 succeeded, 1 failed, 1 skipped, 1 not available")
	assert.NotContains(t, out, "Dry run")
}

func TestUpdateTableMultilineMessage(t *testing.T) {
	r, buf := textRenderer(t)
	require.NoError(t, r.RenderUpdates([]types.UpdateResult{
		types.Failed("apt", "apt-get update exited with code 100: E: one\nE: two", time.Second),
	}, false))

	out := plain(buf.String())
	assert.Contains(t, out, "E: one …")
	assert.NotContains(t, out, "E: two")
}

func TestUpdateTableDryRun(t *testing.T) {
	r, buf := textRenderer(t)
	require.NoError(t, r.RenderUpdates([]types.UpdateResult{
		types.Succeeded("pacman", "Would update 3 packages", 0),
	}, true))

	out := plain(buf.String())
	assert.Contains(t, out, "Dry run: no changes made")
	assert.Contains(t, out, "Summary: 1 succeeded, 0 failed")
}

func TestManagersTable(t *testing.T) {
	r, buf := textRenderer(t)
	require.NoError(t, r.RenderManagers([]types.ManagerInfo{
		{Name: "pacman", Kind: types.KindSystem, Available: true},
		{Name: "fisher", Kind: types.KindPlugin, Available: false},
	}))

	out := plain(buf.String())
	assert.Regexp(t, row("Manager", "Kind", "Available"), out)
	assert.Regexp(t, row("pacman", "system", "yes"), out)
	assert.Regexp(t, row("fisher", "plugin", "no"), out)
}

func TestRenderError(t *testing.T) {
	r, buf := textRenderer(t)
	require.NoError(t, r.RenderError(errors.New("no operation specified")))
	assert.Equal(t, "Error: no operation specified\n", buf.String())
}

func TestJSONCheck(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderCheck(sampleChecks()))

	var got map[string][]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []interface{}{true, float64(7)}, got["pkgmgrA"])
	assert.Equal(t, []interface{}{false, float64(0)}, got["pkgmgrB"])
	assert.Equal(t, []interface{}{false, float64(-1)}, got["pluginX"])
}

func TestJSONUpdatesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	results := []types.UpdateResult{
		types.Succeeded("pacman", "System packages updated", 1500*time.Millisecond),
		types.Failed("yay", "timed out", 1800*time.Second),
	}
	require.NoError(t, r.RenderUpdates(results, false))

	var back []types.UpdateResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, results, back)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "success", raw[0]["status"])
	assert.Equal(t, 1.5, raw[0]["duration"])
}

func TestJSONEmptyUpdatesIsArray(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderUpdates(nil, false))
	assert.JSONEq(t, "[]", buf.String())
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "0.0s", ui.FormatDuration(0))
	assert.Equal(t, "5.0s", ui.FormatDuration(4960*time.Millisecond))
	assert.Equal(t, "-", ui.CheckCount(types.Indeterminate()))
	assert.Equal(t, ui.LabelUnknown, ui.CheckStatus(types.Indeterminate()))
	assert.Equal(t, ui.LabelUpToDate, ui.CheckStatus(types.Counted(0)))
	assert.Equal(t, "✓", ui.Glyph(types.StatusSuccess))
	assert.Equal(t, "✗", ui.Glyph(types.StatusFailed))
	assert.Equal(t, "○", ui.Glyph(types.StatusSkipped))
	assert.Equal(t, "-", ui.Glyph(types.StatusNotAvailable))
}
