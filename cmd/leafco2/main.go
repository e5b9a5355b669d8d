package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/leafco2/internal/cli"
	"github.com/rshade/leafco2/pkg/version"
)

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.DisplayVersion())
	return root.ExecuteContext(ctx)
}

// extractExitCode maps a command error to a process exit code.
// Rejected estimates exit with their own code; any other error exits 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var failure *cli.EstimateFailureError
	if errors.As(err, &failure) {
		return failure.ExitCode()
	}
	return 1
}
