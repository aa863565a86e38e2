package config

import (
	"github.com/arthur-debert/swman/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// fileView mirrors Config with durations as strings, the shape the loader reads back
type fileView struct {
	Check    checkView              `toml:"check"`
	Output   outputView             `toml:"output"`
	Managers map[string]managerView `toml:"managers"`
}

type checkView struct {
	Timeout string `toml:"timeout"`
}

type outputView struct {
	Format    string `toml:"format"`
	TailLines int    `toml:"tail_lines"`
}

type managerView struct {
	Enabled       bool   `toml:"enabled"`
	Sudo          bool   `toml:"sudo"`
	UpdateTimeout string `toml:"update_timeout"`
	Marker        string `toml:"marker,omitempty"`
}

// MarshalTOML renders the configuration in the user config file format
func (c *Config) MarshalTOML() ([]byte, error) {
	view := fileView{
		Check:    checkView{Timeout: c.Check.Timeout.String()},
		Output:   outputView{Format: c.Output.Format, TailLines: c.Output.TailLines},
		Managers: make(map[string]managerView, len(c.Managers)),
	}
	for name, m := range c.Managers {
		view.Managers[name] = managerView{
			Enabled:       m.Enabled,
			Sudo:          m.Sudo,
			UpdateTimeout: m.UpdateTimeout.String(),
			Marker:        m.Marker,
		}
	}

	data, err := toml.Marshal(view)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}
