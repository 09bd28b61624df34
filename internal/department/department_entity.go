package department

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Department struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"size:100;not null;uniqueIndex:uq_departments_name"`
	Code         string          `gorm:"size:20;not null;uniqueIndex:uq_departments_code"`
	Description  string          `gorm:"type:text"`
	Manager      string          `gorm:"size:100"`
	ManagerTitle string          `gorm:"size:100"`
	Location     string          `gorm:"size:200"`
	Phone        string          `gorm:"size:20"`
	Email        string          `gorm:"size:254"`
	Budget       decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0"`
	Status       string          `gorm:"size:20;not null;default:active;index"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`

	// diisi oleh subquery di repository, bukan kolom
	EmployeeCount int64 `gorm:"->;-:migration"`
}

func (Department) TableName() string {
	return "departments"
}
