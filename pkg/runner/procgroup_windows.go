//go:build windows

package runner

import "os/exec"

// setProcessGroup is a no-op on Windows; only the direct child is killed.
func setProcessGroup(cmd *exec.Cmd) {}
