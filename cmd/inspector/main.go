package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/inspector/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()

	r, err := runner.New(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("failed to initialize inspector got %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	summary, err := r.Run(ctx)
	if err != nil {
		gologger.Fatal().Msgf("inspection failed: %v", err)
	}
	if summary.Errors > 0 {
		os.Exit(1)
	}
}
