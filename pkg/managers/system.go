package managers

import (
	"context"
	"strings"

	"github.com/arthur-debert/swman/pkg/config"
	"github.com/arthur-debert/swman/pkg/runner"
	"github.com/arthur-debert/swman/pkg/types"
)

// Pacman updates Arch Linux repository packages
type Pacman struct{ base }

// NewPacman creates the pacman backend
func NewPacman(env Env, cfg config.Manager) *Pacman {
	return &Pacman{base{name: NamePacman, kind: types.KindSystem, env: env, cfg: cfg}}
}

// Available reports whether pacman is installed
func (p *Pacman) Available(ctx context.Context) (bool, error) {
	return p.hasCommand(ctx, "pacman")
}

// Check lists upgradable packages. checkupdates is preferred when present
// since it syncs into a temporary database; both tools exit non-zero when
// nothing is pending.
func (p *Pacman) Check(ctx context.Context) types.CheckResult {
	if ok, _ := p.hasCommand(ctx, "checkupdates"); ok {
		return p.listCheck(ctx, runner.Command{Name: "checkupdates"}, nil, 2)
	}
	return p.listCheck(ctx, runner.Command{Name: "pacman", Args: []string{"-Qu"}}, nil, 1)
}

// Update runs a full system upgrade
func (p *Pacman) Update(ctx context.Context, dry bool) types.UpdateResult {
	if dry {
		return dryRun(ctx, p, "system packages")
	}
	cmd := p.privileged(p.command("pacman", "-Syu", "--noconfirm"))
	return p.runSteps(ctx, "System packages updated", cmd)
}

// Yay updates AUR packages. Repository packages are left to pacman.
type Yay struct{ base }

// NewYay creates the yay backend
func NewYay(env Env, cfg config.Manager) *Yay {
	return &Yay{base{name: NameYay, kind: types.KindSystem, env: env, cfg: cfg}}
}

// Available reports whether yay is installed
func (y *Yay) Available(ctx context.Context) (bool, error) {
	return y.hasCommand(ctx, "yay")
}

// Check lists upgradable AUR packages
func (y *Yay) Check(ctx context.Context) types.CheckResult {
	return y.listCheck(ctx, runner.Command{Name: "yay", Args: []string{"-Qua"}}, nil, 1)
}

// Update upgrades AUR packages. yay escalates on its own, so sudo is off
// by default.
func (y *Yay) Update(ctx context.Context, dry bool) types.UpdateResult {
	if dry {
		return dryRun(ctx, y, "AUR packages")
	}
	cmd := y.privileged(y.command("yay", "-Sua", "--noconfirm"))
	return y.runSteps(ctx, "AUR packages updated", cmd)
}

// Apt updates Debian and Ubuntu packages
type Apt struct{ base }

// NewApt creates the apt backend
func NewApt(env Env, cfg config.Manager) *Apt {
	return &Apt{base{name: NameApt, kind: types.KindSystem, env: env, cfg: cfg}}
}

// Available reports whether apt-get is installed
func (a *Apt) Available(ctx context.Context) (bool, error) {
	return a.hasCommand(ctx, "apt-get")
}

// Check counts upgradable packages from the local index
func (a *Apt) Check(ctx context.Context) types.CheckResult {
	return a.listCheck(ctx, runner.Command{Name: "apt", Args: []string{"list", "--upgradable"}}, aptPackageLine)
}

// aptPackageLine drops the listing header and the CLI stability warning
func aptPackageLine(line string) bool {
	return !strings.HasPrefix(line, "Listing") && !strings.HasPrefix(line, "WARNING")
}

// Update refreshes the index then upgrades
func (a *Apt) Update(ctx context.Context, dry bool) types.UpdateResult {
	if dry {
		return dryRun(ctx, a, "system packages")
	}
	return a.runSteps(ctx, "System packages updated",
		a.privileged(a.command("apt-get", "update")),
		a.privileged(a.command("apt-get", "upgrade", "-y")),
	)
}
