package salary

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-payroll/internal/employee"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	service *service
	repo    Repository
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "salary.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&employee.Employee{}, &SalaryRecord{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// satu koneksi supaya transaksi sqlite tidak saling mengunci
	sqlDB.SetMaxOpenConns(1)

	repo := NewRepository(db)
	svc := NewService(sqlDB, repo, employee.NewRepository(db), nil, nil).(*service)
	svc.now = func() time.Time { return time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC) }

	return &fixture{db: db, service: svc, repo: repo}
}

func (f *fixture) seedEmployee(t *testing.T, number, name, department, position string, base int64, status string) *employee.Employee {
	t.Helper()
	e := &employee.Employee{
		ID:             uuid.New(),
		EmployeeNumber: number,
		Name:           name,
		Gender:         employee.GenderFemale,
		Department:     department,
		Position:       position,
		HireDate:       time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary:     decimal.NewFromInt(base),
		Status:         status,
	}
	require.NoError(t, f.db.Omit("DepartmentRef").Create(e).Error)
	return e
}

func input(period string, bonus, deductions string) CalculationInput {
	return CalculationInput{
		SalaryPeriod: period,
		Bonus:        decimal.RequireFromString(bonus),
		Deductions:   decimal.RequireFromString(deductions),
	}
}

func TestSalaryFlow_CalculateAndSnapshot(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	ana := f.seedEmployee(t, "EMP0001", "Ana Wijaya", "Engineering", "Engineer", 12000, employee.StatusActive)

	created, err := f.service.CalculateByEmployeeNumber(ctx, "EMP0001", input("2025-01", "1000", "500.50"))
	require.NoError(t, err)
	assert.Equal(t, "13000", created.GrossSalary.String())
	assert.Equal(t, "12499.5", created.NetSalary.String())
	assert.Equal(t, "Engineer", created.Position)

	t.Run("second calculation for the same period conflicts", func(t *testing.T) {
		_, err := f.service.CalculateByEmployeeID(ctx, ana.ID.String(), input("2025-01", "0", "0"))
		assert.ErrorIs(t, err, salaryerrors.ErrSalaryRecordExists)
	})

	t.Run("unknown employee is reported before bad input", func(t *testing.T) {
		_, err := f.service.CalculateByEmployeeNumber(ctx, "EMP9999", input("2025-13", "-1", "0"))
		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
	})

	t.Run("record keeps the snapshot after the employee changes", func(t *testing.T) {
		require.NoError(t, f.db.Model(&employee.Employee{}).
			Where("id = ?", ana.ID.String()).
			Updates(map[string]any{"base_salary": decimal.NewFromInt(20000), "position": "Lead Engineer"}).Error)

		got, err := f.service.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(12000)))
		assert.Equal(t, "Engineer", got.Position)
		assert.True(t, got.NetSalary.Equal(decimal.RequireFromString("12499.50")))

		next, err := f.service.CalculateByEmployeeNumber(ctx, "EMP0001", input("2025-02", "0", "0"))
		require.NoError(t, err)
		assert.True(t, next.BaseSalary.Equal(decimal.NewFromInt(20000)))
		assert.Equal(t, "Lead Engineer", next.Position)
	})

	t.Run("history is newest period first", func(t *testing.T) {
		hist, err := f.service.History(ctx, "EMP0001", query.Pagination{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Len(t, hist.SalaryRecords, 2)
		assert.Equal(t, "2025-02", hist.SalaryRecords[0].SalaryPeriod)
		assert.Equal(t, "2025-01", hist.SalaryRecords[1].SalaryPeriod)
		assert.Equal(t, "Ana Wijaya", hist.Employee.Name)
	})
}

func TestSalaryFlow_GenerateTwice(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.seedEmployee(t, "EMP0001", "Ana Wijaya", "Engineering", "Engineer", 12000, employee.StatusActive)
	f.seedEmployee(t, "EMP0002", "Budi Hartono", "Finance", "Accountant", 8000, employee.StatusActive)
	f.seedEmployee(t, "EMP0003", "Citra Lestari", "Finance", "Analyst", 9000, employee.StatusOnLeave)

	_, err := f.service.CalculateByEmployeeNumber(ctx, "EMP0002", input("2025-01", "0", "0"))
	require.NoError(t, err)

	first, err := f.service.GenerateForAll(ctx, input("2025-01", "200", "100"))
	require.NoError(t, err)
	require.Len(t, first.Created, 2)
	assert.Equal(t, "EMP0001", first.Created[0].EmployeeID)
	assert.Equal(t, "EMP0003", first.Created[1].EmployeeID)
	assert.Equal(t, []string{"EMP0002"}, first.SkippedEmployeeIDs)

	second, err := f.service.GenerateForAll(ctx, input("2025-01", "200", "100"))
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Equal(t, []string{"EMP0001", "EMP0002", "EMP0003"}, second.SkippedEmployeeIDs)

	_, err = f.service.GenerateForAll(ctx, input("2025-01", "-5", "0"))
	assert.ErrorIs(t, err, salaryerrors.ErrNegativeBonus)

	t.Run("list filters", func(t *testing.T) {
		finance := "Finance"
		page, err := f.service.List(ctx, ListQuery{
			Department: &finance,
			Ordering:   defaultOrdering,
			Pagination: query.Pagination{Page: 1, PageSize: 20},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.TotalCount)

		min := decimal.NewFromInt(10000)
		page, err = f.service.List(ctx, ListQuery{
			MinSalary:  &min,
			Ordering:   query.Ordering{Column: "salary_records.net_salary", Desc: true},
			Pagination: query.Pagination{Page: 1, PageSize: 20},
		})
		require.NoError(t, err)
		require.Equal(t, int64(1), page.TotalCount)
		assert.Equal(t, "EMP0001", page.Results[0].EmployeeID)

		page, err = f.service.List(ctx, ListQuery{
			Search:     "citra",
			Ordering:   defaultOrdering,
			Pagination: query.Pagination{Page: 1, PageSize: 20},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.TotalCount)
	})

	t.Run("stats for the current period", func(t *testing.T) {
		stats, err := f.service.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2025-01", stats.Period)
		assert.Equal(t, int64(3), stats.TotalRecords)
		assert.Equal(t, "29200", stats.TotalSalary.String())
		assert.Equal(t, int64(2), stats.DepartmentCount)
	})

	t.Run("csv export", func(t *testing.T) {
		period := "2025-01"
		file, err := f.service.Export(ctx, ExportQuery{SalaryPeriod: &period, Format: ExportFormatCSV})
		require.NoError(t, err)

		body := string(file.Body)
		require.True(t, strings.HasPrefix(body, "\ufeff"))
		lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(body, "\ufeff")), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, strings.Join(exportHeaders, ","), lines[0])
		assert.Contains(t, body, "Ana Wijaya,EMP0001,Engineering,2025-01,Engineer,12000,12200,200,100,12100,")
		assert.True(t, strings.HasSuffix(file.Filename, ".csv"))
	})

	t.Run("xlsx export", func(t *testing.T) {
		file, err := f.service.Export(ctx, ExportQuery{Format: ExportFormatXLSX})
		require.NoError(t, err)
		assert.Equal(t, "PK", string(file.Body[:2]))
	})
}

func TestSalaryFlow_AmountScale(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.seedEmployee(t, "EMP0001", "Ana Wijaya", "Engineering", "Engineer", 10000, employee.StatusActive)
	f.seedEmployee(t, "EMP0002", "Budi Santoso", "Finance", "Director", 99999999, employee.StatusActive)

	rejected := []struct {
		name       string
		employee   string
		bonus      string
		deductions string
		want       error
	}{
		{"sub-cent bonus", "EMP0001", "0.004", "0", salaryerrors.ErrInvalidBonus},
		{"sub-cent deductions", "EMP0001", "0", "0.006", salaryerrors.ErrInvalidDeductions},
		{"bonus wider than column", "EMP0001", "100000000", "0", salaryerrors.ErrInvalidBonus},
		{"deductions wider than column", "EMP0001", "0", "123456789.00", salaryerrors.ErrInvalidDeductions},
		{"gross overflows column", "EMP0002", "1", "0", salaryerrors.ErrGrossOutOfRange},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.CalculateByEmployeeNumber(ctx, tc.employee, input("2025-01", tc.bonus, tc.deductions))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&SalaryRecord{}).Count(&count).Error)
	assert.Zero(t, count)

	created, err := f.service.CalculateByEmployeeNumber(ctx, "EMP0001", input("2025-01", "0.01", "0.99"))
	require.NoError(t, err)
	assert.True(t, created.NetSalary.Equal(created.GrossSalary.Sub(created.Deductions)))
	assert.Equal(t, "9999.02", created.NetSalary.StringFixed(2))
}

func TestRepository_TotalsCountsUnassignedDepartment(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.seedEmployee(t, "EMP0001", "Ana Wijaya", "Engineering", "Engineer", 12000, employee.StatusActive)
	f.seedEmployee(t, "EMP0002", "Dewi Putri", "", "Intern", 3000, employee.StatusActive)

	_, err := f.service.GenerateForAll(ctx, input("2025-01", "0", "0"))
	require.NoError(t, err)

	totals, err := f.repo.Totals(ctx, "2025-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.TotalRecords)
	// department kosong tetap dihitung sebagai satu nilai tersendiri
	assert.Equal(t, int64(2), totals.DepartmentCount)
}
