package department

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"time"

	departmenterrors "go-payroll/internal/department/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/money"
	"go-payroll/internal/shared/query"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var phonePattern = regexp.MustCompile(`^[\d\-\+\(\)\s]+$`)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	List(ctx context.Context, q ListQuery) (query.Page[DepartmentResponse], error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("code", req.Code),
	)

	dept := &Department{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Code:         strings.TrimSpace(req.Code),
		Description:  req.Description,
		Manager:      req.Manager,
		ManagerTitle: req.ManagerTitle,
		Location:     req.Location,
		Phone:        req.Phone,
		Email:        req.Email,
		Budget:       req.Budget,
		Status:       req.Status,
	}
	if dept.Status == "" {
		dept.Status = StatusActive
	}
	if err := validate(dept); err != nil {
		return DepartmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create department commit failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.String("department_id", dept.ID.String()),
	)
	return mapToResponse(*dept), nil
}

func (s *service) List(ctx context.Context, q ListQuery) (query.Page[DepartmentResponse], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return query.Page[DepartmentResponse]{}, mapRepositoryError(err)
	}
	return query.MapPage(page, mapToResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	oldName := dept.Name
	applyUpdate(dept, req)
	if err := validate(dept); err != nil {
		return DepartmentResponse{}, err
	}

	if err := qtx.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if dept.Name != oldName {
		synced, err := qtx.SyncEmployeeDepartmentName(ctx, id, dept.Name)
		if err != nil {
			s.logger.Error("sync employee department name failed", zap.String("department_id", id), zap.Error(err))
			return DepartmentResponse{}, err
		}
		s.logger.Info("department renamed",
			zap.String("department_id", id),
			zap.String("old_name", oldName),
			zap.String("new_name", dept.Name),
			zap.Int64("employees_synced", synced),
		)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update department commit failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

// Delete menolak department yang masih dipakai employee. FK RESTRICT di
// database menjadi lapis kedua kalau ada insert employee yang balapan.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrDepartmentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete department begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	count, err := qtx.CountEmployees(ctx, id)
	if err != nil {
		s.logger.Error("count department employees failed", zap.String("department_id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		s.logger.Warn("delete department rejected",
			zap.String("department_id", id),
			zap.Int64("employee_count", count),
		)
		return departmenterrors.ErrDepartmentHasEmployees.WithDetails(map[string]int64{"employee_count": count})
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete department commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func applyUpdate(dept *Department, req UpdateDepartmentRequest) {
	if req.Name != nil {
		dept.Name = strings.TrimSpace(*req.Name)
	}
	if req.Code != nil {
		dept.Code = strings.TrimSpace(*req.Code)
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if req.Manager != nil {
		dept.Manager = *req.Manager
	}
	if req.ManagerTitle != nil {
		dept.ManagerTitle = *req.ManagerTitle
	}
	if req.Location != nil {
		dept.Location = *req.Location
	}
	if req.Phone != nil {
		dept.Phone = *req.Phone
	}
	if req.Email != nil {
		dept.Email = *req.Email
	}
	if req.Budget != nil {
		dept.Budget = *req.Budget
	}
	if req.Status != nil {
		dept.Status = *req.Status
	}
}

func validate(dept *Department) error {
	if dept.Budget.IsNegative() {
		return departmenterrors.ErrNegativeBudget
	}
	if !money.Fits(dept.Budget, money.BudgetIntDigits) {
		return departmenterrors.ErrInvalidBudget
	}
	if dept.Status != StatusActive && dept.Status != StatusInactive {
		return departmenterrors.ErrInvalidStatus
	}
	if dept.Phone != "" && !phonePattern.MatchString(dept.Phone) {
		return departmenterrors.ErrInvalidPhone
	}
	return nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            dept.ID.String(),
		Name:          dept.Name,
		Code:          dept.Code,
		Description:   dept.Description,
		Manager:       dept.Manager,
		ManagerTitle:  dept.ManagerTitle,
		Location:      dept.Location,
		Phone:         dept.Phone,
		Email:         dept.Email,
		Budget:        dept.Budget.Round(2),
		Status:        dept.Status,
		EmployeeCount: dept.EmployeeCount,
		CreatedAt:     dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     dept.UpdatedAt.Format(time.RFC3339),
	}
}
