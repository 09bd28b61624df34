package main

import (
	"go-payroll/internal/app"
	"go-payroll/internal/bootstrap"

	"go.uber.org/zap"
)

func main() {
	cfg, logger, err := bootstrap.Setup()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
