package runner

import (
	"context"
	"testing"
	"time"

	swerrors "github.com/arthur-debert/swman/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Completed(t *testing.T) {
	r := NewExecRunner()

	res := r.Run(context.Background(), Command{
		Name:    "sh",
		Args:    []string{"-c", "echo out; echo err 1>&2"},
		Timeout: 5 * time.Second,
	})

	assert.Equal(t, OutcomeCompleted, res.Outcome)
	assert.True(t, res.OK())
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
	assert.NoError(t, res.Error(Command{Name: "sh"}))
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	r := NewExecRunner()
	cmd := Command{Name: "sh", Args: []string{"-c", "echo locked 1>&2; exit 3"}, Timeout: 5 * time.Second}

	res := r.Run(context.Background(), cmd)

	assert.Equal(t, OutcomeCompleted, res.Outcome)
	assert.False(t, res.OK())
	assert.Equal(t, 3, res.ExitCode)
	err := res.Error(cmd)
	require.Error(t, err)
	assert.True(t, swerrors.IsErrorCode(err, swerrors.ErrCommandFailed))
	assert.Equal(t, "locked", swerrors.GetErrorDetails(err)["stderr"])
}

func TestExecRunner_Timeout(t *testing.T) {
	r := NewExecRunner()
	cmd := Command{Name: "sh", Args: []string{"-c", "echo partial; sleep 10"}, Timeout: 300 * time.Millisecond}

	res := r.Run(context.Background(), cmd)

	assert.Equal(t, OutcomeTimedOut, res.Outcome)
	assert.False(t, res.OK())
	assert.Less(t, res.Duration, 5*time.Second)
	assert.GreaterOrEqual(t, res.Duration, 300*time.Millisecond)
	assert.True(t, swerrors.IsErrorCode(res.Error(cmd), swerrors.ErrCommandTimeout))
}

func TestExecRunner_SpawnFailure(t *testing.T) {
	r := NewExecRunner()
	cmd := Command{Name: "swman-definitely-not-a-binary", Timeout: time.Second}

	res := r.Run(context.Background(), cmd)

	assert.Equal(t, OutcomeSpawnFailed, res.Outcome)
	assert.Error(t, res.Err)
	assert.True(t, swerrors.IsErrorCode(res.Error(cmd), swerrors.ErrCommandStart))
}

func TestExecRunner_Interrupted(t *testing.T) {
	r := NewExecRunner()
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	res := r.Run(ctx, Command{Name: "sleep", Args: []string{"10"}, Timeout: 10 * time.Second})

	assert.Equal(t, OutcomeInterrupted, res.Outcome)
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestExecRunner_LookPath(t *testing.T) {
	r := NewExecRunner()

	path, err := r.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = r.LookPath("swman-definitely-not-a-binary")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestLinesAndTail(t *testing.T) {
	out := "a\n\n  b  \nc\n"

	assert.Equal(t, []string{"a", "b", "c"}, Lines(out))
	assert.Equal(t, []string{"b", "c"}, Tail(out, 2))
	assert.Equal(t, []string{"a", "b", "c"}, Tail(out, 20))
	assert.Empty(t, Lines(""))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "pacman -Syu --noconfirm", Command{Name: "pacman", Args: []string{"-Syu", "--noconfirm"}}.String())
	assert.Equal(t, "checkupdates", Command{Name: "checkupdates"}.String())
}
