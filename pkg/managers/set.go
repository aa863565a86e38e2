package managers

import (
	"github.com/arthur-debert/swman/pkg/config"
	"github.com/arthur-debert/swman/pkg/errors"
	"github.com/arthur-debert/swman/pkg/registry"
)

// Factory builds a manager from its settings
type Factory func(env Env, cfg config.Manager) Manager

var factories = registry.New[Factory]()

// Registration order is declaration order: system backends first, then
// tools, then plugins.
func init() {
	registry.MustRegister[Factory](factories, NamePacman, func(e Env, c config.Manager) Manager { return NewPacman(e, c) })
	registry.MustRegister[Factory](factories, NameYay, func(e Env, c config.Manager) Manager { return NewYay(e, c) })
	registry.MustRegister[Factory](factories, NameApt, func(e Env, c config.Manager) Manager { return NewApt(e, c) })
	registry.MustRegister[Factory](factories, NameUV, func(e Env, c config.Manager) Manager { return NewUV(e, c) })
	registry.MustRegister[Factory](factories, NameLazy, func(e Env, c config.Manager) Manager { return NewLazy(e, c) })
	registry.MustRegister[Factory](factories, NameFisher, func(e Env, c config.Manager) Manager { return NewFisher(e, c) })
}

// Names lists every built-in manager in declaration order
func Names() []string {
	return factories.List()
}

// NewSet builds the enabled managers in declaration order. Configuration
// for a manager swman does not know is rejected.
func NewSet(cfg *config.Config, env Env) ([]Manager, error) {
	for _, name := range cfg.ManagerNames() {
		if !factories.Has(name) {
			return nil, errors.Newf(errors.ErrConfigValid, "unknown manager %q in configuration", name).
				WithDetail("manager", name)
		}
	}

	defaults := config.Default()
	var set []Manager
	for _, name := range factories.List() {
		mc, ok := cfg.ManagerConfig(name)
		if !ok {
			mc, _ = defaults.ManagerConfig(name)
		}
		if !mc.Enabled {
			continue
		}
		factory, err := factories.Get(name)
		if err != nil {
			return nil, err
		}
		set = append(set, factory(env, mc))
	}
	return set, nil
}
