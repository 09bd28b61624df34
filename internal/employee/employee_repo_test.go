package employee

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-payroll/internal/shared/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "employee.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DepartmentRef{}, &Employee{}))
	// tabel turunan minimal, cukup untuk cascade delete
	require.NoError(t, db.Exec(`CREATE TABLE salary_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL
	)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE attendance_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL
	)`).Error)

	return db, NewRepository(db)
}

func seedEmployee(t *testing.T, repo Repository, number, name, department, position, status string) *Employee {
	t.Helper()
	e := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: number,
		Name:           name,
		Gender:         GenderMale,
		Department:     department,
		Position:       position,
		HireDate:       time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary:     decimal.NewFromInt(8000),
		Status:         status,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func seedStaff(t *testing.T, repo Repository) {
	t.Helper()
	seedEmployee(t, repo, "EMP0001", "Ana Wijaya", "Engineering", "Engineer", StatusActive)
	seedEmployee(t, repo, "EMP0002", "Budi Hartono", "Finance", "Accountant", StatusActive)
	seedEmployee(t, repo, "EMP0003", "Citra Lestari", "Finance", "Analyst", StatusOnLeave)
	seedEmployee(t, repo, "EMP0004", "Dodi Enginero", "Marketing", "Designer", StatusTerminated)
	seedEmployee(t, repo, "EMP0005", "Eka Putra", "Marketing", "Engineering Manager", StatusActive)
}

func numbers(empls []Employee) []string {
	out := make([]string, len(empls))
	for i, e := range empls {
		out[i] = e.EmployeeNumber
	}
	return out
}

func listQuery(mutate func(q *ListQuery)) ListQuery {
	q := ListQuery{
		Ordering:   query.Ordering{Column: "employees.employee_number"},
		Pagination: query.Pagination{Page: 1, PageSize: 20},
	}
	if mutate != nil {
		mutate(&q)
	}
	return q
}

func strPtr(v string) *string { return &v }

func TestRepository_List(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()
	seedStaff(t, repo)

	tests := []struct {
		name   string
		mutate func(q *ListQuery)
		want   []string
	}{
		{"active only by default", nil, []string{"EMP0001", "EMP0002", "EMP0005"}},
		{"include all status", func(q *ListQuery) { q.IncludeAllStatus = true },
			[]string{"EMP0001", "EMP0002", "EMP0003", "EMP0004", "EMP0005"}},
		{"search over name, department and position", func(q *ListQuery) { q.Search = "ENGINE" },
			[]string{"EMP0001", "EMP0005"}},
		{"search includes other statuses when asked", func(q *ListQuery) {
			q.Search = "engine"
			q.IncludeAllStatus = true
		}, []string{"EMP0001", "EMP0004", "EMP0005"}},
		{"search by business key", func(q *ListQuery) { q.Search = "emp0002" }, []string{"EMP0002"}},
		{"department is an exact match", func(q *ListQuery) { q.Department = strPtr("Finance") }, []string{"EMP0002"}},
		{"department prefix does not match", func(q *ListQuery) { q.Department = strPtr("Fin") }, []string{}},
		{"position filter", func(q *ListQuery) {
			q.Position = strPtr("Analyst")
			q.IncludeAllStatus = true
		}, []string{"EMP0003"}},
		{"status filter with all statuses", func(q *ListQuery) {
			q.Status = strPtr(StatusTerminated)
			q.IncludeAllStatus = true
		}, []string{"EMP0004"}},
		{"status filter cannot widen the active default", func(q *ListQuery) { q.Status = strPtr(StatusOnLeave) }, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.List(ctx, listQuery(tt.mutate))
			require.NoError(t, err)

			assert.Equal(t, tt.want, numbers(page.Results))
			assert.Equal(t, int64(len(tt.want)), page.TotalCount)
			if !listQuery(tt.mutate).IncludeAllStatus {
				for _, e := range page.Results {
					assert.Equal(t, StatusActive, e.Status)
				}
			}
		})
	}
}

func TestRepository_ListPagesCoverTotalCount(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := context.Background()
	seedStaff(t, repo)

	seen := map[string]bool{}
	var total int64
	pages := 1
	for page := 1; page <= pages; page++ {
		res, err := repo.List(ctx, listQuery(func(q *ListQuery) {
			q.IncludeAllStatus = true
			q.Pagination = query.Pagination{Page: page, PageSize: 2}
		}))
		require.NoError(t, err)

		pages = res.TotalPages
		total = res.TotalCount
		assert.Equal(t, page, res.CurrentPage)
		for _, e := range res.Results {
			assert.False(t, seen[e.EmployeeNumber], "duplicate %s", e.EmployeeNumber)
			seen[e.EmployeeNumber] = true
		}
	}

	assert.Equal(t, 3, pages)
	assert.Equal(t, int64(5), total)
	assert.Len(t, seen, int(total))

	// halaman di luar jangkauan dijepit ke halaman terakhir
	last, err := repo.List(ctx, listQuery(func(q *ListQuery) {
		q.IncludeAllStatus = true
		q.Pagination = query.Pagination{Page: 9, PageSize: 2}
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, last.CurrentPage)
	assert.Equal(t, []string{"EMP0005"}, numbers(last.Results))
}

func TestRepository_DeleteCascades(t *testing.T) {
	db, repo := setupRepo(t)
	ctx := context.Background()

	ana := seedEmployee(t, repo, "EMP0001", "Ana Wijaya", "Engineering", "Engineer", StatusActive)
	budi := seedEmployee(t, repo, "EMP0002", "Budi Hartono", "Finance", "Accountant", StatusActive)

	for _, id := range []string{ana.ID.String(), ana.ID.String(), budi.ID.String()} {
		require.NoError(t, db.Exec(`INSERT INTO salary_records (id, employee_id) VALUES (?, ?)`, uuid.NewString(), id).Error)
		require.NoError(t, db.Exec(`INSERT INTO attendance_records (id, employee_id) VALUES (?, ?)`, uuid.NewString(), id).Error)
	}

	require.NoError(t, repo.Delete(ctx, ana.ID.String()))

	count := func(table, employeeID string) int64 {
		var n int64
		require.NoError(t, db.Table(table).Where("employee_id = ?", employeeID).Count(&n).Error)
		return n
	}
	assert.Zero(t, count("salary_records", ana.ID.String()))
	assert.Zero(t, count("attendance_records", ana.ID.String()))
	assert.Equal(t, int64(1), count("salary_records", budi.ID.String()))
	assert.Equal(t, int64(1), count("attendance_records", budi.ID.String()))

	_, err := repo.FindByID(ctx, ana.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, ana.ID.String())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
