package department

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-payroll/internal/shared/query"
)

func setupRepo(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "department.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Department{}))
	// tabel employees minimal, cukup untuk count dan sync nama
	require.NoError(t, db.Exec(`CREATE TABLE employees (
		id TEXT PRIMARY KEY,
		department_id TEXT,
		department TEXT
	)`).Error)

	return db, NewRepository(db)
}

func seedDepartment(t *testing.T, repo Repository, name, code string, budget int64) *Department {
	t.Helper()
	d := &Department{
		ID:     uuid.New(),
		Name:   name,
		Code:   code,
		Budget: decimal.NewFromInt(budget),
		Status: StatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), d))
	return d
}

func TestRepository_ListWithEmployeeCount(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	eng := seedDepartment(t, repo, "Engineering", "ENG", 900)
	seedDepartment(t, repo, "Finance", "FIN", 300)
	seedDepartment(t, repo, "Human Resources", "HR", 100)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Exec(`INSERT INTO employees (id, department_id, department) VALUES (?, ?, ?)`,
			uuid.NewString(), eng.ID.String(), eng.Name).Error)
	}

	page, err := repo.List(ctx, ListQuery{
		Ordering:   query.Ordering{Column: "departments.budget", Desc: true},
		Pagination: query.Pagination{Page: 1, PageSize: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Engineering", page.Results[0].Name)
	assert.Equal(t, int64(3), page.Results[0].EmployeeCount)
	assert.Equal(t, int64(0), page.Results[1].EmployeeCount)

	searched, err := repo.List(ctx, ListQuery{
		Search:     "fin",
		Ordering:   defaultOrdering,
		Pagination: query.Pagination{Page: 1, PageSize: 20},
	})
	require.NoError(t, err)
	require.Len(t, searched.Results, 1)
	assert.Equal(t, "FIN", searched.Results[0].Code)
}

func TestRepository_SyncAndCount(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	eng := seedDepartment(t, repo, "Engineering", "ENG", 0)
	require.NoError(t, db.Exec(`INSERT INTO employees (id, department_id, department) VALUES (?, ?, ?)`,
		uuid.NewString(), eng.ID.String(), "Engineering").Error)

	count, err := repo.CountEmployees(ctx, eng.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	synced, err := repo.SyncEmployeeDepartmentName(ctx, eng.ID.String(), "Platform")
	require.NoError(t, err)
	assert.Equal(t, int64(1), synced)

	var name string
	require.NoError(t, db.Raw(`SELECT department FROM employees LIMIT 1`).Scan(&name).Error)
	assert.Equal(t, "Platform", name)
}

func TestRepository_DuplicateAndMissing(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()

	seedDepartment(t, repo, "Engineering", "ENG", 0)

	err := repo.Create(ctx, &Department{ID: uuid.New(), Name: "Engineering", Code: "ENG2", Status: StatusActive})
	assert.Error(t, err)
	assert.Error(t, mapRepositoryError(err))
	assert.Contains(t, mapRepositoryError(err).Error(), "same name")

	_, err = repo.FindByID(ctx, uuid.NewString())
	assert.Error(t, mapRepositoryError(err))
	assert.Contains(t, mapRepositoryError(err).Error(), "not found")

	err = repo.Delete(ctx, uuid.NewString())
	assert.Contains(t, mapRepositoryError(err).Error(), "not found")
}
