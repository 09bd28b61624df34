package department_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-payroll/internal/department"
	departmenterrors "go-payroll/internal/department/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/query"

	departmentMock "go-payroll/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service department.Service
	repo    *departmentMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := departmentMock.NewMockRepository(ctrl)
	svc := department.NewService(db, repo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(s string) *string { return &s }

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults status to active", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, d *department.Department) error {
				assert.Equal(t, "Engineering", d.Name)
				assert.Equal(t, "ENG", d.Code)
				assert.Equal(t, department.StatusActive, d.Status)
				assert.NotEqual(t, uuid.Nil, d.ID)
				return nil
			})

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
			Name:   " Engineering ",
			Code:   "ENG",
			Budget: decimal.NewFromInt(500000),
			Phone:  "+62 (21) 555-0100",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.Equal(t, "500000", resp.Budget.String())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative budget is rejected before touching the store", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
			Name:   "Finance",
			Code:   "FIN",
			Budget: decimal.NewFromInt(-1),
		})

		assert.ErrorIs(t, err, departmenterrors.ErrNegativeBudget)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("budget scale must fit numeric(15,2)", func(t *testing.T) {
		for _, raw := range []string{"1500.005", "10000000000000"} {
			deps := setupServiceTest(t)

			_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
				Name:   "Finance",
				Code:   "FIN",
				Budget: decimal.RequireFromString(raw),
			})

			assert.ErrorIs(t, err, departmenterrors.ErrInvalidBudget, raw)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
			Name:  "Finance",
			Code:  "FIN",
			Phone: "call me",
		})

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidPhone)
	})

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_departments_code"})

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Finance", Code: "ENG"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentCodeExists)
		assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))
	})
}

func TestDepartmentService_List(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	q := department.ListQuery{Pagination: query.Pagination{Page: 1, PageSize: 20}}
	deps.repo.EXPECT().List(ctx, q).Return(query.Page[department.Department]{
		Results: []department.Department{
			{ID: uuid.New(), Name: "HR", Code: "HR", Status: "active", EmployeeCount: 3},
		},
		TotalPages:  1,
		CurrentPage: 1,
		TotalCount:  1,
	}, nil)

	page, err := deps.service.List(ctx, q)

	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(3), page.Results[0].EmployeeCount)
	assert.Equal(t, int64(1), page.TotalCount)
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id is not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("rename syncs employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{
			ID: id, Name: "Engineering", Code: "ENG", Status: "active",
		}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SyncEmployeeDepartmentName(ctx, id.String(), "Platform").Return(int64(4), nil)

		resp, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{
			Name: strPtr("Platform"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Platform", resp.Name)
		assert.Equal(t, "ENG", resp.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("no rename skips sync", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{
			ID: id, Name: "Engineering", Code: "ENG", Status: "active",
		}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{
			Status: strPtr("inactive"),
		})

		require.NoError(t, err)
		assert.Equal(t, "inactive", resp.Status)
	})

	t.Run("sync failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&department.Department{
			ID: id, Name: "Engineering", Code: "ENG", Status: "active",
		}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SyncEmployeeDepartmentName(ctx, id.String(), "Platform").Return(int64(0), errors.New("db down"))

		_, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{Name: strPtr("Platform")})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("protected while employees reference it", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountEmployees(ctx, id).Return(int64(2), nil)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentHasEmployees)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 409, httpErr.Status)
		assert.Equal(t, map[string]int64{"employee_count": 2}, httpErr.Details)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("foreign key race maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountEmployees(ctx, id).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(&pgconn.PgError{Code: "23503"})

		err := deps.service.Delete(ctx, id)
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentHasEmployees)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountEmployees(ctx, id).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
