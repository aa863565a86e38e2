package managers

import (
	"context"

	"github.com/arthur-debert/swman/pkg/config"
	"github.com/arthur-debert/swman/pkg/types"
)

// UV upgrades tools installed with `uv tool install`
type UV struct{ base }

// NewUV creates the uv backend
func NewUV(env Env, cfg config.Manager) *UV {
	return &UV{base{name: NameUV, kind: types.KindTool, env: env, cfg: cfg}}
}

// Available reports whether uv is installed
func (u *UV) Available(ctx context.Context) (bool, error) {
	return u.hasCommand(ctx, "uv")
}

// Check is indeterminate: uv has no side-effect-free outdated listing
func (u *UV) Check(ctx context.Context) types.CheckResult {
	return types.Indeterminate()
}

// Update upgrades every installed tool
func (u *UV) Update(ctx context.Context, dry bool) types.UpdateResult {
	if dry {
		return dryRun(ctx, u, "uv tools")
	}
	return u.runSteps(ctx, "uv tools upgraded", u.privileged(u.command("uv", "tool", "upgrade", "--all")))
}
