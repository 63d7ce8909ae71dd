package main

import (
	"context"
	"tm30/config"
	"tm30/di"
	"tm30/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	worker := di.InitializeWorker()
	go worker.Run(context.Background())

	http := di.InitializeService()
	http.Serve()
}
