package app

import (
	"go-payroll/internal/config"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/connection"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp membuka koneksi, menjalankan migrasi bila diminta, lalu
// mendaftarkan semua modul ke router. cleanup menutup koneksi.
func BuildApp(router *gin.Engine, cfg *config.Config) (cleanup func(), err error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Postgres.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	router.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(20, 40),
	)

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, logger); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	router.NoRoute(func(c *gin.Context) {
		response.AbortWithError(c, apperror.ErrNotFound)
	})

	return func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}, nil
}
