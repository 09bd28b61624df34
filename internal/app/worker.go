package app

import (
	"context"

	"go-payroll/internal/config"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/messaging/kafka/producer"

	"go.uber.org/zap"
)

// RunWorker me-relay outbox_events ke Kafka sampai menerima SIGINT/SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	deps, err := openMessaging(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	writer := producer.NewWriter(deps.brokers)
	defer writer.Close()

	outboxRepo := kafka.NewOutboxRepository(deps.sqlDB)

	runUntilSignal(logger, func(ctx context.Context) {
		producer.ProcessOutboxEvents(ctx, outboxRepo, writer, logger, cfg.Kafka.PollInterval())
	})
	return nil
}
