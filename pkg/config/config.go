package config

import (
	"sort"
	"time"

	"github.com/arthur-debert/swman/pkg/errors"
)

// Config is the effective swman configuration
type Config struct {
	Check    Check              `koanf:"check"`
	Output   Output             `koanf:"output"`
	Managers map[string]Manager `koanf:"managers"`
}

// Check holds settings for the pending-update query
type Check struct {
	Timeout time.Duration `koanf:"timeout"`
}

// Output holds presentation settings
type Output struct {
	Format string `koanf:"format"`
	// TailLines is how many lines of captured output are shown when a
	// long-running update times out
	TailLines int `koanf:"tail_lines"`
}

// Manager holds per-manager settings
type Manager struct {
	Enabled       bool          `koanf:"enabled"`
	Sudo          bool          `koanf:"sudo"`
	UpdateTimeout time.Duration `koanf:"update_timeout"`
	// Marker is the filesystem path that must exist for plugin managers
	Marker string `koanf:"marker"`
}

// ManagerConfig returns the settings for a manager, zero value if absent
func (c *Config) ManagerConfig(name string) (Manager, bool) {
	m, ok := c.Managers[name]
	return m, ok
}

// ManagerNames returns configured manager names, sorted
func (c *Config) ManagerNames() []string {
	names := make([]string, 0, len(c.Managers))
	for name := range c.Managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Check.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "check.timeout must be positive, got %s", c.Check.Timeout)
	}
	if c.Output.TailLines < 0 {
		return errors.Newf(errors.ErrConfigValid, "output.tail_lines must not be negative, got %d", c.Output.TailLines)
	}
	switch c.Output.Format {
	case "", "auto", "term", "terminal", "text", "plain", "json":
	default:
		return errors.Newf(errors.ErrConfigValid, "output.format %q is not one of auto, term, text, json", c.Output.Format)
	}
	for _, name := range c.ManagerNames() {
		m := c.Managers[name]
		if m.UpdateTimeout <= 0 {
			return errors.Newf(errors.ErrConfigValid, "managers.%s.update_timeout must be positive, got %s", name, m.UpdateTimeout).
				WithDetail("manager", name)
		}
	}
	return nil
}
