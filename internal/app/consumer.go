package app

import (
	"context"

	"go-payroll/internal/config"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/salary"

	"go.uber.org/zap"
)

// RunConsumer mengarsipkan slip gaji PDF untuk setiap salary record baru.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	deps, err := openMessaging(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	// renderer hanya membaca, jadi outbox dan cache tidak dipasang
	salaryService := salary.NewService(
		deps.sqlDB,
		salary.NewRepository(deps.gormDB),
		employee.NewRepository(deps.gormDB),
		nil,
		nil,
		logger,
	)
	archive := consumer.DirArchive{Dir: cfg.Payslip.ArchiveDir}

	reader := consumer.NewReader(deps.brokers, cfg.Kafka.ConsumerGroup, events.SalaryRecordCreatedTopic)
	defer reader.Close()

	runUntilSignal(logger, func(ctx context.Context) {
		consumer.ConsumeSalaryRecordCreated(ctx, reader, salaryService, archive, logger)
	})
	return nil
}
