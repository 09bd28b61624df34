package employee

import (
	"context"
	"database/sql"

	"go-payroll/internal/shared/dbtx"
	"go-payroll/internal/shared/query"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	List(ctx context.Context, q ListQuery) (query.Page[Employee], error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error)
	FindDepartmentName(ctx context.Context, departmentID string) (string, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("DepartmentRef").Create(empl).Error
}

func (r *repository) List(ctx context.Context, q ListQuery) (query.Page[Employee], error) {
	db := r.db.WithContext(ctx).Model(&Employee{})
	if !q.IncludeAllStatus {
		db = db.Where("employees.status = ?", StatusActive)
	}

	filtered := db.Scopes(
		query.Search(q.Search,
			"employees.name",
			"employees.employee_number",
			"employees.department",
			"employees.position",
		),
		query.Equal("employees.department", q.Department),
		query.Equal("employees.position", q.Position),
		query.Equal("employees.status", q.Status),
	)

	return query.Paginate[Employee](filtered, q.Pagination,
		func(db *gorm.DB) *gorm.DB { return db.Preload("DepartmentRef") },
		query.Order(q.Ordering),
	)
}

// FindAll dipakai generator gaji: semua employee, urut business key.
func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("employee_number ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("DepartmentRef").
		First(&empl, "employees.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("DepartmentRef").
		First(&empl, "employees.employee_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindDepartmentName(ctx context.Context, departmentID string) (string, error) {
	var ref DepartmentRef
	err := r.db.WithContext(ctx).
		Select("id", "name").
		First(&ref, "id = ?", departmentID).Error
	if err != nil {
		return "", err
	}
	return ref.Name, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("DepartmentRef").Save(empl).Error
}

// Delete ikut menghapus salary dan attendance milik employee.
func (r *repository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	if err := db.Exec("DELETE FROM salary_records WHERE employee_id = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM attendance_records WHERE employee_id = ?", id).Error; err != nil {
		return err
	}

	res := db.Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
