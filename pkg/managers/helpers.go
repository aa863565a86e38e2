package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/swman/pkg/config"
	"github.com/arthur-debert/swman/pkg/paths"
	"github.com/arthur-debert/swman/pkg/runner"
	"github.com/arthur-debert/swman/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// base carries what every adapter shares
type base struct {
	name string
	kind types.Kind
	env  Env
	cfg  config.Manager
}

func (b *base) Name() string     { return b.name }
func (b *base) Kind() types.Kind { return b.kind }

// hasCommand probes PATH for bin
func (b *base) hasCommand(ctx context.Context, bin string) (bool, error) {
	path, err := b.env.Runner.LookPath(bin)
	if err != nil {
		if runner.IsNotFound(err) {
			zerolog.Ctx(ctx).Debug().Str("binary", bin).Msg("Binary not found on PATH")
			return false, nil
		}
		return false, fmt.Errorf("looking up %s: %w", bin, err)
	}
	zerolog.Ctx(ctx).Trace().Str("binary", bin).Str("path", path).Msg("Binary found")
	return true, nil
}

// hasMarker probes the filesystem for the configured marker path
func (b *base) hasMarker(ctx context.Context) (bool, error) {
	if b.cfg.Marker == "" {
		return true, nil
	}
	marker := paths.ExpandHomeWith(b.cfg.Marker, b.env.Home)
	ok, err := afero.Exists(b.env.FS, marker)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", marker, err)
	}
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("marker", marker).Msg("Marker not present")
	}
	return ok, nil
}

// pluginAvailable requires both the host binary and the plugin manager marker
func (b *base) pluginAvailable(ctx context.Context, bin string) (bool, error) {
	ok, err := b.hasCommand(ctx, bin)
	if err != nil || !ok {
		return false, err
	}
	return b.hasMarker(ctx)
}

// privileged prefixes cmd with sudo unless disabled or already root
func (b *base) privileged(cmd runner.Command) runner.Command {
	if !b.cfg.Sudo || b.env.Runner.IsRoot() {
		return cmd
	}
	return runner.Command{
		Name:    "sudo",
		Args:    append([]string{cmd.Name}, cmd.Args...),
		Timeout: cmd.Timeout,
		Env:     cmd.Env,
	}
}

// command builds an update invocation bounded by the manager's timeout
func (b *base) command(name string, args ...string) runner.Command {
	return runner.Command{Name: name, Args: args, Timeout: b.cfg.UpdateTimeout}
}

// listCheck counts the lines a listing command prints. Exit codes in
// noneCodes mean "nothing to update" for that backend; any other non-zero
// exit, timeout or spawn failure yields (false, 0).
func (b *base) listCheck(ctx context.Context, cmd runner.Command, keep func(string) bool, noneCodes ...int) types.CheckResult {
	logger := zerolog.Ctx(ctx)
	cmd.Timeout = b.env.CheckTimeout

	res := b.env.Runner.Run(ctx, cmd)
	if res.Outcome != runner.OutcomeCompleted {
		logger.Error().Err(res.Error(cmd)).Msg("Update check did not complete")
		return types.NoUpdates()
	}
	if res.ExitCode != 0 {
		for _, code := range noneCodes {
			if res.ExitCode == code {
				return types.NoUpdates()
			}
		}
		logger.Error().Err(res.Error(cmd)).Msg("Update check failed")
		return types.NoUpdates()
	}

	n := 0
	for _, line := range runner.Lines(res.Stdout) {
		if keep == nil || keep(line) {
			n++
		}
	}
	logger.Debug().Int("count", n).Msg("Update check finished")
	return types.Counted(n)
}

// runSteps executes steps in order, stopping at the first failure
func (b *base) runSteps(ctx context.Context, success string, steps ...runner.Command) types.UpdateResult {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	for _, step := range steps {
		res := b.env.Runner.Run(ctx, step)
		if res.OK() {
			continue
		}
		elapsed := time.Since(start)
		msg := b.failureMessage(step, res)
		logger.Error().Err(res.Error(step)).Dur("duration", elapsed).Msg("Update failed")
		if res.Outcome == runner.OutcomeTimedOut {
			b.showTail(res)
		}
		return types.Failed(b.name, msg, elapsed)
	}

	elapsed := time.Since(start)
	logger.Info().Dur("duration", elapsed).Msg("Update finished")
	return types.Succeeded(b.name, success, elapsed)
}

func (b *base) failureMessage(cmd runner.Command, res runner.Result) string {
	switch res.Outcome {
	case runner.OutcomeTimedOut:
		return fmt.Sprintf("%s timed out after %s", cmd, cmd.Timeout)
	case runner.OutcomeSpawnFailed:
		return fmt.Sprintf("could not start %s: %v", cmd.Name, res.Err)
	case runner.OutcomeInterrupted:
		return fmt.Sprintf("%s interrupted", cmd)
	}
	msg := fmt.Sprintf("%s exited with code %d", cmd, res.ExitCode)
	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = strings.Join(runner.Tail(res.Stdout, 3), "\n")
	}
	if detail != "" {
		msg += ": " + detail
	}
	return msg
}

// showTail writes the end of captured output to the console. Only
// long-running backends opt in via tailOnTimeout.
func (b *base) showTail(res runner.Result) {
	if b.env.Console == nil || b.env.TailLines <= 0 || !tailOnTimeout[b.name] {
		return
	}
	lines := runner.Tail(res.Stdout+"\n"+res.Stderr, b.env.TailLines)
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b.env.Console, "Last %d lines of %s output:\n", len(lines), b.name)
	for _, line := range lines {
		fmt.Fprintf(b.env.Console, "  %s\n", line)
	}
}

var tailOnTimeout = map[string]bool{NameYay: true}

// dryRun reports what an update would do without running it
func dryRun(ctx context.Context, m Manager, noun string) types.UpdateResult {
	start := time.Now()
	check := m.Check(ctx)
	var msg string
	switch n, ok := check.Count(); {
	case !ok:
		msg = "Would update " + noun
	case n == 1:
		msg = "Would update 1 package"
	default:
		msg = fmt.Sprintf("Would update %d packages", n)
	}
	return types.Succeeded(m.Name(), msg, time.Since(start))
}
