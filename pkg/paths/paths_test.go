package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHomeWith(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/pacman.conf", "/etc/pacman.conf"},
		{"tilde_only", "~", "/home/tester"},
		{"tilde_slash", "~/.config/fish/functions/fisher.fish", "/home/tester/.config/fish/functions/fisher.fish"},
		{"other_user", "~root/file", "~root/file"},
		{"relative", "relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHomeWith(tt.path, "/home/tester"))
		})
	}
}

func TestStateDirRespectsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvXDGStateHome, dir)

	assert.Equal(t, filepath.Join(dir, "swman"), StateDir())
	assert.Equal(t, filepath.Join(dir, "swman", "swman.log"), LogFilePath())
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvSwmanConfigDir, dir)

	assert.Equal(t, dir, ConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.toml"), ConfigFilePath())
}

func TestHomeDir(t *testing.T) {
	t.Setenv(EnvHome, "/home/tester")

	home, err := HomeDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, home)
}
