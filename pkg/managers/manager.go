// Package managers implements the update backends swman drives.
//
// Each backend is a concrete type implementing Manager. Managers keep no
// state between calls: every Available, Check and Update re-probes the
// system through the shared Env. Check and Update never return errors.
// Failures come back as data, a (false, 0) CheckResult or a failed
// UpdateResult, so the orchestrator can treat all backends alike.
package managers

import (
	"context"
	"io"
	"time"

	"github.com/arthur-debert/swman/pkg/runner"
	"github.com/arthur-debert/swman/pkg/types"
	"github.com/spf13/afero"
)

// Manager is the capability every update backend implements
type Manager interface {
	// Name is stable and unique, used as the key in reports
	Name() string
	// Kind selects the manager for --system, --tools and --plugins
	Kind() types.Kind
	// Available probes whether the backend is installed. "Not installed"
	// is (false, nil); an error means the probe itself failed.
	Available(ctx context.Context) (bool, error)
	// Check queries pending updates without mutating anything
	Check(ctx context.Context) types.CheckResult
	// Update applies pending updates, or only reports when dryRun is set
	Update(ctx context.Context, dryRun bool) types.UpdateResult
}

// Env is what managers need from the outside world
type Env struct {
	Runner runner.Runner
	// FS is used for marker probes
	FS afero.Fs
	// Home expands ~ in marker paths
	Home string
	// Console receives output surfaced to the user outside the result table
	Console io.Writer
	// CheckTimeout bounds every Check call
	CheckTimeout time.Duration
	// TailLines is how much captured output to show after a timeout; 0 shows none
	TailLines int
}

// Names of the built-in managers, in declaration order
const (
	NamePacman = "pacman"
	NameYay    = "yay"
	NameApt    = "apt"
	NameUV     = "uv"
	NameLazy   = "lazy"
	NameFisher = "fisher"
)
