package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"tripgate/config"
	"tripgate/di"
	"tripgate/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-done
		log.Info().Msg("Received SIGTERM. Stopping worker.")
		cancel()
	}()

	worker := di.InitializeWorker()
	worker.Run(ctx)

	log.Info().Msg("Worker stopped.")
}
