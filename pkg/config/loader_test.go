package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/swman/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(Options{SkipUserFile: true, SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Check.Timeout)
	assert.Equal(t, 20, cfg.Output.TailLines)
	assert.Equal(t, "auto", cfg.Output.Format)

	assert.Equal(t, []string{"apt", "fisher", "lazy", "pacman", "uv", "yay"}, cfg.ManagerNames())

	tests := []struct {
		name    string
		timeout time.Duration
		sudo    bool
	}{
		{"pacman", 600 * time.Second, true},
		{"yay", 1800 * time.Second, false},
		{"apt", 600 * time.Second, true},
		{"uv", 300 * time.Second, false},
		{"lazy", 120 * time.Second, false},
		{"fisher", 120 * time.Second, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := cfg.ManagerConfig(tt.name)
			require.True(t, ok)
			assert.True(t, m.Enabled)
			assert.Equal(t, tt.timeout, m.UpdateTimeout)
			assert.Equal(t, tt.sudo, m.Sudo)
		})
	}

	lazy, _ := cfg.ManagerConfig("lazy")
	assert.Equal(t, "~/.local/share/nvim/lazy/lazy.nvim", lazy.Marker)
}

func TestLoadUserFileOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[check]
timeout = "10s"

[managers.yay]
update_timeout = "45m"

[managers.apt]
enabled = false
`), 0644))

	cfg, err := Load(Options{Path: path, SkipEnv: true})
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Check.Timeout)

	yay, _ := cfg.ManagerConfig("yay")
	assert.Equal(t, 45*time.Minute, yay.UpdateTimeout)
	assert.True(t, yay.Enabled, "unset keys keep their defaults")

	apt, _ := cfg.ManagerConfig("apt")
	assert.False(t, apt.Enabled)
	assert.True(t, apt.Sudo)
}

func TestLoadDefaultUserFileLocation(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SWMAN_CONFIG_DIR", tmpDir)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(`
[output]
tail_lines = 5
`), 0644))

	cfg, err := Load(Options{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Output.TailLines)
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	t.Setenv("SWMAN_CONFIG_DIR", t.TempDir())

	_, err := Load(Options{SkipEnv: true})
	assert.NoError(t, err)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(Options{Path: filepath.Join(t.TempDir(), "nope.toml"), SkipEnv: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[check\ntimeout ="), 0644))

	_, err := Load(Options{Path: path, SkipEnv: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadUnknownManagerReportedFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[managers.pacmn]\nsudo = false\n"), 0644))

	_, err := Load(Options{Path: path, SkipEnv: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Contains(t, err.Error(), `unknown manager "pacmn"`)
	assert.NotContains(t, err.Error(), "update_timeout")
	assert.Equal(t, "pacmn", errors.GetErrorDetails(err)["manager"])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SWMAN_CONFIG_DIR", t.TempDir())
	t.Setenv("SWMAN_CHECK__TIMEOUT", "5s")
	t.Setenv("SWMAN_MANAGERS__PACMAN__SUDO", "false")
	t.Setenv("SWMAN_MANAGERS__UV__UPDATE_TIMEOUT", "2m")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Check.Timeout)
	pacman, _ := cfg.ManagerConfig("pacman")
	assert.False(t, pacman.Sudo)
	uv, _ := cfg.ManagerConfig("uv")
	assert.Equal(t, 2*time.Minute, uv.UpdateTimeout)
}

func TestLoadOverridesWin(t *testing.T) {
	t.Setenv("SWMAN_CHECK__TIMEOUT", "5s")

	cfg, err := Load(Options{
		SkipUserFile: true,
		Overrides:    map[string]interface{}{"check.timeout": "1m", "output.format": "json"},
	})
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Check.Timeout)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	t.Run("non_positive_timeout", func(t *testing.T) {
		_, err := Load(Options{
			SkipUserFile: true,
			SkipEnv:      true,
			Overrides:    map[string]interface{}{"managers.yay.update_timeout": "0s"},
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, "yay", errors.GetErrorDetails(err)["manager"])
	})

	t.Run("bad_format", func(t *testing.T) {
		_, err := Load(Options{
			SkipUserFile: true,
			SkipEnv:      true,
			Overrides:    map[string]interface{}{"output.format": "xml"},
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestMarshalTOMLRoundTrip(t *testing.T) {
	cfg := Default()

	data, err := cfg.MarshalTOML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "30m0s")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	back, err := Load(Options{Path: path, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
