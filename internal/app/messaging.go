package app

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"

	"go-payroll/internal/config"
	"go-payroll/internal/shared/connection"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type messagingDeps struct {
	gormDB  *gorm.DB
	sqlDB   *sql.DB
	brokers []string
}

func (d messagingDeps) Close() error {
	return d.sqlDB.Close()
}

// openMessaging menyiapkan koneksi Postgres dan menunggu broker Kafka siap.
func openMessaging(cfg *config.Config) (messagingDeps, error) {
	brokers := cfg.Kafka.Brokers()
	if len(brokers) == 0 {
		return messagingDeps{}, fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres)
	if err != nil {
		return messagingDeps{}, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return messagingDeps{}, err
	}

	if err := connection.WaitForKafka(brokers, cfg.Postgres.MaxRetries); err != nil {
		sqlDB.Close()
		return messagingDeps{}, err
	}

	return messagingDeps{gormDB: gormDB, sqlDB: sqlDB, brokers: brokers}, nil
}

// runUntilSignal menjalankan loop sampai SIGINT/SIGTERM lalu menunggu loop selesai.
func runUntilSignal(logger *zap.Logger, loop func(ctx context.Context)) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		loop(ctx)
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	<-done
}
