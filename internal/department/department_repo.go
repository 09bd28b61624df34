package department

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/dbtx"
	"go-payroll/internal/shared/query"

	"gorm.io/gorm"
)

const employeeCountSelect = "departments.*, " +
	"(SELECT COUNT(*) FROM employees WHERE employees.department_id = departments.id) AS employee_count"

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	List(ctx context.Context, q ListQuery) (query.Page[Department], error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int64, error)
	SyncEmployeeDepartmentName(ctx context.Context, id, name string) (int64, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) List(ctx context.Context, q ListQuery) (query.Page[Department], error) {
	filtered := r.db.WithContext(ctx).
		Model(&Department{}).
		Scopes(
			query.Search(q.Search,
				"departments.name",
				"departments.code",
				"departments.manager",
				"departments.description",
			),
			query.Equal("departments.status", q.Status),
		)

	return query.Paginate[Department](filtered, q.Pagination,
		func(db *gorm.DB) *gorm.DB { return db.Select(employeeCountSelect) },
		query.Order(q.Ordering),
	)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Select(employeeCountSelect).
		First(&dept, "departments.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountEmployees(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ?", id).
		Count(&count).Error
	return count, err
}

// SyncEmployeeDepartmentName menyalin nama department baru ke kolom
// denormalisasi employees.department.
func (r *repository) SyncEmployeeDepartmentName(ctx context.Context, id, name string) (int64, error) {
	res := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ?", id).
		Update("department", name)
	return res.RowsAffected, res.Error
}
