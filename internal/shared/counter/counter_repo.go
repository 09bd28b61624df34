package counter

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/dbtx"

	"gorm.io/gorm"
)

// Counter backs sequential business keys such as employee numbers.
type Counter struct {
	Name      string    `gorm:"primaryKey;size:50"`
	LastValue int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Counter) TableName() string {
	return "counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, name string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) GetNextValue(ctx context.Context, name string) (int64, error) {
	var nextValue int64

	// UPSERT atomik supaya dua request paralel tidak mendapat nomor yang sama
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, last_value, updated_at)
		VALUES (?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = CURRENT_TIMESTAMP
		RETURNING last_value
	`, name).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
