// Package main is the entrypoint of fetcharr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fetcharr/internal/app"
	"fetcharr/internal/cfg"
	"fetcharr/internal/domain/logger"
)

// main is the main entrypoint of the program.
func main() {
	startTime := time.Now()

	// create cancellable context for shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer cancel()

	// ---- INIT COMMANDS ----
	if err := cfg.InitCommands(app.Actions()); err != nil {
		fmt.Fprintf(os.Stderr, "fetcharr exiting with error: %v\n", err)
		os.Exit(1)
	}

	// ---- RUN PROGRAM ----
	if err := cfg.Execute(ctx); err != nil {
		logger.Pl.Error().Err(err).Msg("fetcharr exiting with error")
		cancel()
		os.Exit(1)
	}
	logger.Pl.Debug().Dur("elapsed", time.Since(startTime)).Msg("fetcharr finished")
}
