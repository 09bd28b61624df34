package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/dbtx"
	"go-payroll/internal/shared/query"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *AttendanceRecord) error
	List(ctx context.Context, q ListQuery) (query.Page[AttendanceRecord], error)
	FindEmployee(ctx context.Context, employeeNumber string) (*EmployeeRef, error)
	CountByStatusesBetween(ctx context.Context, statuses []string, from, to time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, a *AttendanceRecord) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(a).Error
}

func (r *repository) List(ctx context.Context, q ListQuery) (query.Page[AttendanceRecord], error) {
	db := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Joins("JOIN employees ON employees.id = attendance_records.employee_id").
		Scopes(
			query.Equal("attendance_records.status", q.Status),
			query.Equal("employees.employee_number", q.EmployeeNumber),
		)
	if q.DateFrom != nil {
		db = db.Where("attendance_records.date >= ?", q.DateFrom.UTC())
	}
	if q.DateTo != nil {
		db = db.Where("attendance_records.date <= ?", q.DateTo.UTC())
	}

	return query.Paginate[AttendanceRecord](db, q.Pagination,
		func(db *gorm.DB) *gorm.DB {
			return db.Select("attendance_records.*").Preload("Employee")
		},
		query.Order(q.Ordering),
	)
}

func (r *repository) FindEmployee(ctx context.Context, employeeNumber string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		First(&ref, "employee_number = ?", employeeNumber).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// CountByStatusesBetween menghitung record dengan status tertentu pada
// rentang tanggal [from, to], inklusif.
func (r *repository) CountByStatusesBetween(ctx context.Context, statuses []string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AttendanceRecord{}).
		Where("status IN ?", statuses).
		Where("date >= ? AND date <= ?", from.UTC(), to.UTC()).
		Count(&count).Error
	return count, err
}
