package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppiankov/identigen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		logger := cli.Logger()
		logger.Error().Err(err).Msg("identigen failed")
		os.Exit(1)
	}
}
