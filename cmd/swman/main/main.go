package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/swman/cmd/swman"
)

func main() {
	// Ctrl-C or SIGTERM cancels the run; the child process is killed and
	// swman exits 130 without printing partial results.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := swman.Main(ctx, os.Args[1:], swman.Deps{})
	stop()
	os.Exit(code)
}
