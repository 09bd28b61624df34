package main

import (
	"context"
	"os/signal"
	"syscall"

	"go-payroll/internal/app"
	"go-payroll/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, logger, err := bootstrap.Setup()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.RunHTTPServer(ctx, r, bootstrap.ServerConfigFrom(cfg.App), bootstrap.NewStdoutAuditLogger()); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
