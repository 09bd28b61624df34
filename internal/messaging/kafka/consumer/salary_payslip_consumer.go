package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-payroll/internal/events"
	salaryerrors "go-payroll/internal/salary/errors"

	"go.uber.org/zap"
)

type PayslipRenderer interface {
	RenderPayslip(ctx context.Context, id string) ([]byte, string, error)
}

type PayslipArchive interface {
	Save(name string, body []byte) (string, error)
}

// ConsumeSalaryRecordCreated merender slip gaji untuk setiap record baru
// dan menyimpannya ke archive.
func ConsumeSalaryRecordCreated(
	ctx context.Context,
	reader MessageReader,
	renderer PayslipRenderer,
	archive PayslipArchive,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_payslip")
	log.Info("salary payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary payslip consumer stopped")
				return
			}
			log.Error("fetch salary record message failed", zap.Error(err))
			continue
		}

		var event events.SalaryRecordCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.SalaryRecordID == "" {
			log.Error("decode salary_record_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		body, filename, err := renderer.RenderPayslip(ctx, event.SalaryRecordID)
		if err != nil {
			if errors.Is(err, salaryerrors.ErrSalaryRecordNotFound) {
				log.Warn("salary record gone before payslip was rendered, skipping",
					zap.String("salary_record_id", event.SalaryRecordID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("render payslip failed",
				zap.String("salary_record_id", event.SalaryRecordID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		path, err := archive.Save(filename, body)
		if err != nil {
			log.Error("archive payslip failed",
				zap.String("salary_record_id", event.SalaryRecordID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary record message failed", zap.Error(err))
			continue
		}

		log.Info("payslip archived",
			zap.String("salary_record_id", event.SalaryRecordID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("salary_period", event.SalaryPeriod),
			zap.String("path", path),
		)
	}
}
