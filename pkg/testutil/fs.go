package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// TestHome is the home directory used with PluginFS
const TestHome = "/home/tester"

// PluginFS returns an in-memory filesystem where each marker (relative to
// TestHome) exists as an empty file
func PluginFS(t testing.TB, markers ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, m := range markers {
		path := filepath.Join(TestHome, m)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, nil, 0644))
	}
	return fs
}
