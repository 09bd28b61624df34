package salary

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/dbtx"
	"go-payroll/internal/shared/query"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Totals adalah agregat mentah untuk statistik gaji.
type Totals struct {
	TotalRecords    int64
	TotalSalary     decimal.Decimal
	AverageSalary   decimal.Decimal
	DepartmentCount int64
}

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *SalaryRecord) error
	ExistsForPeriod(ctx context.Context, employeeID, period string) (bool, error)
	List(ctx context.Context, q ListQuery) (query.Page[SalaryRecord], error)
	ListForExport(ctx context.Context, q ExportQuery) ([]SalaryRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, p query.Pagination) (query.Page[SalaryRecord], error)
	FindByID(ctx context.Context, id string) (*SalaryRecord, error)
	MarkPaid(ctx context.Context, id string, payDate time.Time) error
	Delete(ctx context.Context, id string) error
	Totals(ctx context.Context, period string) (Totals, error)
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

func (r *repository) Create(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(record).Error
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID, period string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Where("employee_id = ? AND salary_period = ?", employeeID, period).
		Count(&count).Error
	return count > 0, err
}

func withEmployee(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN employees ON employees.id = salary_records.employee_id")
}

func selectRecords(db *gorm.DB) *gorm.DB {
	return db.Select("salary_records.*").Preload("Employee")
}

func (r *repository) List(ctx context.Context, q ListQuery) (query.Page[SalaryRecord], error) {
	filtered := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Scopes(
			withEmployee,
			query.Search(q.Search, "employees.name", "employees.employee_number"),
			query.Equal("employees.department", q.Department),
			query.Equal("salary_records.position_snapshot", q.Position),
			query.Equal("salary_records.salary_period", q.SalaryPeriod),
			query.Range("salary_records.net_salary", q.MinSalary, q.MaxSalary),
		)

	return query.Paginate[SalaryRecord](filtered, q.Pagination,
		selectRecords,
		query.Order(q.Ordering),
	)
}

func (r *repository) ListForExport(ctx context.Context, q ExportQuery) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Scopes(
			withEmployee,
			query.Equal("employees.department", q.Department),
			query.Equal("salary_records.salary_period", q.SalaryPeriod),
			selectRecords,
			query.Order(defaultOrdering),
		).
		Find(&records).Error
	return records, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string, p query.Pagination) (query.Page[SalaryRecord], error) {
	filtered := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Where("salary_records.employee_id = ?", employeeID)

	return query.Paginate[SalaryRecord](filtered, p,
		selectRecords,
		query.Order(query.Ordering{Column: "salary_records.salary_period", Desc: true}),
	)
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&record, "salary_records.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) MarkPaid(ctx context.Context, id string, payDate time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Where("id = ?", id).
		Update("pay_date", payDate)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&SalaryRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Totals menghitung jumlah semua record, total dan rata-rata net salary
// untuk satu periode, serta jumlah nilai department (termasuk kosong) yang
// punya record gaji.
func (r *repository) Totals(ctx context.Context, period string) (Totals, error) {
	db := r.db.WithContext(ctx)
	var t Totals

	if err := db.Model(&SalaryRecord{}).Count(&t.TotalRecords).Error; err != nil {
		return Totals{}, err
	}

	var sums struct {
		Total   decimal.NullDecimal
		Average decimal.NullDecimal
	}
	err := db.Model(&SalaryRecord{}).
		Select("SUM(net_salary) AS total, AVG(net_salary) AS average").
		Where("salary_period = ?", period).
		Scan(&sums).Error
	if err != nil {
		return Totals{}, err
	}
	t.TotalSalary = sums.Total.Decimal
	t.AverageSalary = sums.Average.Decimal

	err = db.Model(&SalaryRecord{}).
		Scopes(withEmployee).
		Distinct("employees.department").
		Count(&t.DepartmentCount).Error
	if err != nil {
		return Totals{}, err
	}

	return t, nil
}
