package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"

	GenderMale   = "M"
	GenderFemale = "F"
)

type Employee struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string          `gorm:"column:employee_number;size:20;not null;uniqueIndex:uq_employees_employee_number"`
	Name           string          `gorm:"size:100;not null;index"`
	Gender         string          `gorm:"size:1;not null"`
	Department     string          `gorm:"size:100;index"`
	DepartmentID   *uuid.UUID      `gorm:"type:uuid;index"`
	Position       string          `gorm:"size:100;not null"`
	Phone          string          `gorm:"size:20"`
	HireDate       time.Time       `gorm:"type:date;not null"`
	BirthDate      *time.Time      `gorm:"type:date"`
	BaseSalary     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status         string          `gorm:"size:20;not null;default:active;index"`
	Location       string          `gorm:"size:100"`
	Notes          string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`

	DepartmentRef *DepartmentRef `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Employee) TableName() string {
	return "employees"
}

// DepartmentRef adalah proyeksi read-only dari tabel departments.
type DepartmentRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:100;not null"`
}

func (DepartmentRef) TableName() string {
	return "departments"
}
