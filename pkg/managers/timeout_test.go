package managers

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/arthur-debert/swman/pkg/config"
	"github.com/arthur-debert/swman/pkg/runner"
	"github.com/arthur-debert/swman/pkg/types"
	"github.com/stretchr/testify/assert"
)

// sleeper drives a real process through the shared update path
func sleeper(timeout time.Duration) *base {
	return &base{
		name: "sleeper",
		kind: types.KindTool,
		env:  Env{Runner: runner.NewExecRunner()},
		cfg:  config.Manager{Enabled: true, UpdateTimeout: timeout},
	}
}

func TestUpdateTimeoutWithRealProcess(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	cases := []struct {
		name    string
		timeout time.Duration
		sleep   string
		long    bool
	}{
		{"short", 300 * time.Millisecond, "5", false},
		{"five seconds against ten", 5 * time.Second, "10", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.long && testing.Short() {
				t.Skip("slow timeout scenario")
			}
			b := sleeper(tc.timeout)

			res := b.runSteps(context.Background(), "slept", b.command("sleep", tc.sleep))

			assert.Equal(t, types.StatusFailed, res.Status)
			assert.Contains(t, res.Message, "timed out")
			assert.InDelta(t, tc.timeout.Seconds(), res.Duration.Seconds(), 0.5)
		})
	}
}
