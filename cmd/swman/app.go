package swman

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/swman/pkg/config"
	"github.com/arthur-debert/swman/pkg/errors"
	"github.com/arthur-debert/swman/pkg/logging"
	"github.com/arthur-debert/swman/pkg/managers"
	"github.com/arthur-debert/swman/pkg/orchestrator"
	"github.com/arthur-debert/swman/pkg/paths"
	"github.com/arthur-debert/swman/pkg/runner"
	"github.com/arthur-debert/swman/pkg/ui"
	"github.com/arthur-debert/swman/pkg/ui/styles"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Deps are the collaborators a command run needs. Zero fields get the
// production defaults.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Runner runner.Runner
	FS     afero.Fs
	// Home expands ~ in plugin markers
	Home string
	// ConfigOptions is the base for config.Load; --config sets Path
	ConfigOptions config.Options
	SetupLogger   func(verbosity int) zerolog.Logger
	// Managers, when set, replaces the configured manager set
	Managers []managers.Manager
}

func (d Deps) withDefaults() Deps {
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.Runner == nil {
		d.Runner = runner.NewExecRunner()
	}
	if d.FS == nil {
		d.FS = afero.NewOsFs()
	}
	if d.Home == "" {
		d.Home, _ = paths.HomeDir()
	}
	if d.SetupLogger == nil {
		d.SetupLogger = logging.SetupLogger
	}
	return d
}

// app holds flag values and lazily built state for one invocation
type app struct {
	deps Deps

	verbosity  int
	configPath string
	format     string
	jsonOutput bool

	check   bool
	system  bool
	tools   bool
	plugins bool
	all     bool
	dryRun  bool

	cfg *config.Config
}

func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	opts := a.deps.ConfigOptions
	if a.configPath != "" {
		opts.Path = a.configPath
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

func (a *app) renderer() (ui.Renderer, error) {
	name := a.format
	if a.jsonOutput {
		name = "json"
	}
	if name == "" {
		cfg, err := a.config()
		if err != nil {
			return nil, err
		}
		name = cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrUsage, MsgErrBadFormat, err)
	}
	return ui.NewRenderer(format, a.deps.Stdout)
}

func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	if a.deps.Managers != nil {
		return orchestrator.New(a.deps.Managers...)
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	set, err := managers.NewSet(cfg, managers.Env{
		Runner:       a.deps.Runner,
		FS:           a.deps.FS,
		Home:         a.deps.Home,
		Console:      a.deps.Stderr,
		CheckTimeout: cfg.Check.Timeout,
		TailLines:    cfg.Output.TailLines,
	})
	if err != nil {
		return nil, err
	}
	return orchestrator.New(set...)
}

// Main runs swman with args and returns the process exit code
func Main(ctx context.Context, args []string, deps Deps) int {
	deps = deps.withDefaults()
	rootCmd := NewRootCmdWith(deps)
	rootCmd.SetArgs(args)
	return report(deps.Stderr, rootCmd.ExecuteContext(ctx))
}

// report prints err and maps it to an exit code
func report(w io.Writer, err error) int {
	switch {
	case err == nil:
		return errors.ExitOK
	case errors.IsErrorCode(err, errors.ErrInterrupted), stderrors.Is(err, context.Canceled):
		fmt.Fprintln(w, MsgInterrupted)
		return errors.ExitInterrupted
	case errors.IsErrorCode(err, errors.ErrUpdatesFailed):
		// already visible in the result table
		return errors.ExitFailure
	default:
		fmt.Fprintln(w, styles.Render("Error", "Error: ")+err.Error())
		return errors.ExitCode(err)
	}
}
