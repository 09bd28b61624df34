package app

import (
	"go-payroll/internal/attendance"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/counter"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate membuat/menyesuaikan tabel; urutan mengikuti foreign key.
func Migrate(db *gorm.DB) error {
	models := []any{
		&counter.Counter{},
		&department.Department{},
		&employee.Employee{},
		&salary.SalaryRecord{},
		&attendance.AttendanceRecord{},
		&kafka.OutboxSchema{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		return err
	}
	zap.L().Named("app.migrate").Info("schema migrated", zap.Int("tables", len(models)))
	return nil
}
