// Package main is the entry point for the dslint CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/eykd/dslint-go/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cmd.ExecuteContext(ctx)
	cancel()
	_ = cmd.Logger().Sync()
	if err != nil {
		fmt.Fprint(os.Stderr, cmd.FormatError(err))
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
