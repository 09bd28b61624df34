package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPresent       = "present"
	StatusAbsent        = "absent"
	StatusLate          = "late"
	StatusEarlyLeave    = "early_leave"
	StatusSickLeave     = "sick_leave"
	StatusPersonalLeave = "personal_leave"
	StatusAnnualLeave   = "annual_leave"
	StatusOvertime      = "overtime"
)

// AttendedStatuses dihitung sebagai hadir untuk attendance rate.
var AttendedStatuses = []string{StatusPresent, StatusLate, StatusEarlyLeave, StatusOvertime}

type AttendanceRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_records_employee_date,priority:1"`
	Date          time.Time       `gorm:"type:date;not null;uniqueIndex:uq_attendance_records_employee_date,priority:2;index:idx_attendance_records_date"`
	Status        string          `gorm:"size:20;not null;default:present;index"`
	WorkHours     decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`
	OvertimeHours decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number;size:20;not null"`
	Name           string    `gorm:"size:100;not null"`
	Department     string    `gorm:"size:100"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
