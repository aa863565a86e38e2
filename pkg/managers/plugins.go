package managers

import (
	"context"

	"github.com/arthur-debert/swman/pkg/config"
	"github.com/arthur-debert/swman/pkg/types"
)

// Lazy syncs Neovim plugins managed by lazy.nvim
type Lazy struct{ base }

// NewLazy creates the lazy.nvim backend
func NewLazy(env Env, cfg config.Manager) *Lazy {
	return &Lazy{base{name: NameLazy, kind: types.KindPlugin, env: env, cfg: cfg}}
}

// Available requires nvim on PATH and lazy.nvim installed
func (l *Lazy) Available(ctx context.Context) (bool, error) {
	return l.pluginAvailable(ctx, "nvim")
}

// Check is indeterminate: lazy.nvim can only tell by fetching
func (l *Lazy) Check(ctx context.Context) types.CheckResult {
	return types.Indeterminate()
}

// Update runs a headless Lazy sync
func (l *Lazy) Update(ctx context.Context, dry bool) types.UpdateResult {
	if dry {
		return dryRun(ctx, l, "Neovim plugins")
	}
	return l.runSteps(ctx, "Neovim plugins synced", l.privileged(l.command("nvim", "--headless", "+Lazy! sync", "+qa")))
}

// Fisher updates fish shell plugins
type Fisher struct{ base }

// NewFisher creates the fisher backend
func NewFisher(env Env, cfg config.Manager) *Fisher {
	return &Fisher{base{name: NameFisher, kind: types.KindPlugin, env: env, cfg: cfg}}
}

// Available requires fish on PATH and fisher installed
func (f *Fisher) Available(ctx context.Context) (bool, error) {
	return f.pluginAvailable(ctx, "fish")
}

// Check is indeterminate
func (f *Fisher) Check(ctx context.Context) types.CheckResult {
	return types.Indeterminate()
}

// Update runs `fisher update` inside fish
func (f *Fisher) Update(ctx context.Context, dry bool) types.UpdateResult {
	if dry {
		return dryRun(ctx, f, "fish plugins")
	}
	return f.runSteps(ctx, "Fish plugins updated", f.privileged(f.command("fish", "-c", "fisher update")))
}
