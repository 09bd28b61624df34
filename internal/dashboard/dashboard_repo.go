package dashboard

import (
	"context"
	"time"

	"go-payroll/internal/department"
	"go-payroll/internal/employee"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DepartmentHeadcount struct {
	Department string
	Count      int64
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	// createdBefore nil berarti semua employee aktif.
	CountActiveEmployees(ctx context.Context, createdBefore *time.Time) (int64, error)
	CountActiveDepartments(ctx context.Context) (int64, error)
	AverageActiveBaseSalary(ctx context.Context) (decimal.Decimal, error)
	DepartmentHeadcounts(ctx context.Context) ([]DepartmentHeadcount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) activeEmployees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("status = ?", employee.StatusActive)
}

func (r *repository) CountActiveEmployees(ctx context.Context, createdBefore *time.Time) (int64, error) {
	db := r.activeEmployees(ctx)
	if createdBefore != nil {
		db = db.Where("created_at < ?", createdBefore.UTC())
	}

	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *repository) CountActiveDepartments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&department.Department{}).
		Where("status = ?", department.StatusActive).
		Count(&count).Error
	return count, err
}

func (r *repository) AverageActiveBaseSalary(ctx context.Context) (decimal.Decimal, error) {
	var out struct {
		Average decimal.NullDecimal
	}
	err := r.activeEmployees(ctx).
		Select("AVG(base_salary) AS average").
		Scan(&out).Error
	if err != nil {
		return decimal.Zero, err
	}
	return out.Average.Decimal, nil
}

// DepartmentHeadcounts mengurutkan dari department terbesar; nama kosong tidak ikut.
func (r *repository) DepartmentHeadcounts(ctx context.Context) ([]DepartmentHeadcount, error) {
	var rows []DepartmentHeadcount
	err := r.activeEmployees(ctx).
		Select("department, COUNT(*) AS count").
		Where("department <> ''").
		Group("department").
		Order("count DESC, department ASC").
		Scan(&rows).Error
	return rows, err
}
