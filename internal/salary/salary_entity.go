package salary

import (
	"time"

	"go-payroll/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const PeriodConstraint = "uq_salary_records_employee_period"

type SalaryRecord struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_salary_records_employee_period,priority:1"`
	SalaryPeriod       string          `gorm:"size:7;not null;uniqueIndex:uq_salary_records_employee_period,priority:2;index:idx_salary_records_period"`
	PositionSnapshot   string          `gorm:"size:100;not null"`
	BaseSalarySnapshot decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Bonus              decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Deductions         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	GrossSalary        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	NetSalary          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PayDate            *time.Time      `gorm:"type:date"`
	CreatedAt          time.Time       `gorm:"autoCreateTime;index:idx_salary_records_created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}

// Snapshot adalah salinan data employee pada saat gaji dihitung.
// Perubahan employee setelahnya tidak boleh mengubah record lama.
type Snapshot struct {
	Position   string
	BaseSalary decimal.Decimal
}

func takeSnapshot(empl *employee.Employee) Snapshot {
	return Snapshot{
		Position:   empl.Position,
		BaseSalary: empl.BaseSalary,
	}
}

// newRecord selalu menghitung gross dan net dari snapshot; tidak ada jalur
// lain yang mengisi kedua kolom itu.
func newRecord(empl *employee.Employee, snap Snapshot, in CalculationInput) *SalaryRecord {
	gross := snap.BaseSalary.Add(in.Bonus)
	return &SalaryRecord{
		ID:                 uuid.New(),
		EmployeeID:         empl.ID,
		SalaryPeriod:       in.SalaryPeriod,
		PositionSnapshot:   snap.Position,
		BaseSalarySnapshot: snap.BaseSalary,
		Bonus:              in.Bonus,
		Deductions:         in.Deductions,
		GrossSalary:        gross,
		NetSalary:          gross.Sub(in.Deductions),
	}
}
