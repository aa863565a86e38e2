package testutil

import (
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/arthur-debert/swman/pkg/runner"
)

// FakeRunner is a scripted runner.Runner. Responses are keyed by the full
// command line as rendered by runner.Command.String.
type FakeRunner struct {
	mu sync.Mutex

	// Binaries resolvable through LookPath, mapped to their path
	Binaries map[string]string
	// LookPathErr, when set, is returned for every binary not in Binaries
	LookPathErr error
	// Root is what IsRoot reports
	Root bool

	responses map[string]runner.Result
	calls     []runner.Command
}

// NewFakeRunner creates a runner where the given binaries exist
func NewFakeRunner(binaries ...string) *FakeRunner {
	f := &FakeRunner{
		Binaries:  make(map[string]string),
		responses: make(map[string]runner.Result),
	}
	for _, b := range binaries {
		f.Binaries[b] = "/usr/bin/" + b
	}
	return f
}

// On scripts the result for a command line
func (f *FakeRunner) On(cmdline string, res runner.Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = res
	return f
}

// OnOutput scripts a successful run printing stdout
func (f *FakeRunner) OnOutput(cmdline, stdout string) *FakeRunner {
	return f.On(cmdline, runner.Result{Outcome: runner.OutcomeCompleted, Stdout: stdout})
}

// OnExit scripts a completed run with a non-zero exit code
func (f *FakeRunner) OnExit(cmdline string, code int, stderr string) *FakeRunner {
	return f.On(cmdline, runner.Result{Outcome: runner.OutcomeCompleted, ExitCode: code, Stderr: stderr})
}

// OnTimeout scripts a run killed by its timeout
func (f *FakeRunner) OnTimeout(cmdline, stdout string) *FakeRunner {
	return f.On(cmdline, runner.Result{Outcome: runner.OutcomeTimedOut, ExitCode: -1, Stdout: stdout})
}

// OnSpawnError scripts a command that cannot be started
func (f *FakeRunner) OnSpawnError(cmdline string, err error) *FakeRunner {
	return f.On(cmdline, runner.Result{Outcome: runner.OutcomeSpawnFailed, ExitCode: -1, Err: err})
}

// Run returns the scripted result. Unscripted commands behave as if the
// binary is missing.
func (f *FakeRunner) Run(ctx context.Context, cmd runner.Command) runner.Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, cmd)
	if err := ctx.Err(); err != nil {
		return runner.Result{Outcome: runner.OutcomeInterrupted, ExitCode: -1, Err: err}
	}
	if res, ok := f.responses[cmd.String()]; ok {
		if res.Outcome == runner.OutcomeTimedOut && res.Duration == 0 {
			res.Duration = cmd.Timeout
		}
		return res
	}
	return runner.Result{
		Outcome:  runner.OutcomeSpawnFailed,
		ExitCode: -1,
		Err:      fmt.Errorf("exec: %q: %w", cmd.Name, exec.ErrNotFound),
	}
}

// LookPath resolves binaries from the Binaries map
func (f *FakeRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if path, ok := f.Binaries[name]; ok {
		return path, nil
	}
	if f.LookPathErr != nil {
		return "", f.LookPathErr
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// IsRoot reports the scripted privilege level
func (f *FakeRunner) IsRoot() bool {
	return f.Root
}

// Calls returns every command run so far
func (f *FakeRunner) Calls() []runner.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]runner.Command, len(f.calls))
	copy(calls, f.calls)
	return calls
}

// CommandLines returns every command run so far as strings
func (f *FakeRunner) CommandLines() []string {
	var lines []string
	for _, c := range f.Calls() {
		lines = append(lines, c.String())
	}
	return lines
}
