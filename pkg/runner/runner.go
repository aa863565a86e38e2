// Package runner executes external commands for the update managers.
//
// Every run returns a Result whose Outcome tells the caller which of
// the four things happened: the process ran to completion (with some
// exit code), it was killed because its timeout expired, it could not
// be started at all, or the caller's context was cancelled. Managers
// branch on the outcome instead of inspecting exec errors.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	swerrors "github.com/arthur-debert/swman/pkg/errors"
	"github.com/arthur-debert/swman/pkg/logging"
)

// Outcome tags how a command run ended
type Outcome int

const (
	// OutcomeCompleted means the process exited on its own
	OutcomeCompleted Outcome = iota
	// OutcomeTimedOut means the process was killed when its timeout expired
	OutcomeTimedOut
	// OutcomeSpawnFailed means the process could not be started
	OutcomeSpawnFailed
	// OutcomeInterrupted means the caller's context was cancelled
	OutcomeInterrupted
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeTimedOut:
		return "timed_out"
	case OutcomeSpawnFailed:
		return "spawn_failed"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// DefaultWaitDelay bounds how long Run waits for output pipes to close
// after the process has been killed.
const DefaultWaitDelay = 2 * time.Second

// Command describes one external invocation
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration
	Env     []string
}

// String renders the command line for logs and messages
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result is the outcome of a single command run
type Result struct {
	Outcome  Outcome
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
	Duration time.Duration
}

// OK reports whether the command completed with exit code 0
func (r Result) OK() bool {
	return r.Outcome == OutcomeCompleted && r.ExitCode == 0
}

// Error converts a non-OK result into a coded error, nil when OK
func (r Result) Error(cmd Command) error {
	switch {
	case r.OK():
		return nil
	case r.Outcome == OutcomeTimedOut:
		return swerrors.Newf(swerrors.ErrCommandTimeout, "%s timed out after %s", cmd.Name, cmd.Timeout).
			WithDetail("command", cmd.String())
	case r.Outcome == OutcomeSpawnFailed:
		return swerrors.Wrapf(r.Err, swerrors.ErrCommandStart, "failed to start %s", cmd.Name).
			WithDetail("command", cmd.String())
	case r.Outcome == OutcomeInterrupted:
		return swerrors.Wrap(r.Err, swerrors.ErrInterrupted, "interrupted")
	default:
		return swerrors.Newf(swerrors.ErrCommandFailed, "%s exited with code %d", cmd.Name, r.ExitCode).
			WithDetail("command", cmd.String()).
			WithDetail("stderr", strings.TrimSpace(r.Stderr))
	}
}

// Runner runs commands and resolves binaries
type Runner interface {
	// Run executes cmd, enforcing cmd.Timeout when positive
	Run(ctx context.Context, cmd Command) Result
	// LookPath resolves a binary on PATH, like `which`
	LookPath(name string) (string, error)
	// IsRoot reports whether the process runs with root privileges
	IsRoot() bool
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	WaitDelay time.Duration
}

// NewExecRunner creates a runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{WaitDelay: DefaultWaitDelay}
}

// Run executes the command, capturing stdout and stderr
func (r *ExecRunner) Run(ctx context.Context, c Command) Result {
	logger := logging.FromContext(ctx, "runner")
	logging.LogCommand(logger, c.Name, c.Args)

	runCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, c.Name, c.Args...)
	cmd.WaitDelay = r.WaitDelay
	setProcessGroup(cmd)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		res.Outcome = OutcomeInterrupted
		res.Err = ctx.Err()
		res.ExitCode = -1
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		res.Outcome = OutcomeTimedOut
		res.ExitCode = -1
	case err == nil:
		res.Outcome = OutcomeCompleted
	case errors.As(err, &exitErr):
		res.Outcome = OutcomeCompleted
		res.ExitCode = exitErr.ExitCode()
	case cmd.ProcessState == nil:
		res.Outcome = OutcomeSpawnFailed
		res.ExitCode = -1
	default:
		// exited, but the pipes outlived WaitDelay
		res.Outcome = OutcomeCompleted
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	logger.Debug().
		Str("command", c.Name).
		Str("outcome", res.Outcome.String()).
		Int("exit_code", res.ExitCode).
		Dur("duration", res.Duration).
		Msg("Command finished")

	return res
}

// LookPath resolves name on PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// IsRoot reports whether the effective uid is 0
func (r *ExecRunner) IsRoot() bool {
	return os.Geteuid() == 0
}

// IsNotFound reports whether a LookPath error means "not installed"
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// Lines splits output into non-empty, trimmed lines
func Lines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Tail returns the last n non-empty lines of output
func Tail(output string, n int) []string {
	lines := Lines(output)
	if n <= 0 || len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
