package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/shared/money"
	"go-payroll/internal/shared/query"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	EmployeeNumberCounter = "employee_number"
	minAgeAtHireYears     = 16
)

var mobilePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, q ListQuery) (query.Page[EmployeeResponse], error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: strings.TrimSpace(req.EmployeeID),
		Name:           strings.TrimSpace(req.Name),
		Gender:         req.Gender,
		Department:     req.Department,
		DepartmentID:   uuidPtr(req.DepartmentID),
		Position:       strings.TrimSpace(req.Position),
		Phone:          req.Phone,
		HireDate:       hireDate,
		BirthDate:      birthDate,
		BaseSalary:     req.BaseSalary,
		Status:         req.Status,
		Location:       req.Location,
		Notes:          req.Notes,
	}
	if empl.Status == "" {
		empl.Status = StatusActive
	}
	if err := validate(empl, s.now()); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := syncDepartmentName(ctx, qtx, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if empl.EmployeeNumber == "" {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, EmployeeNumberCounter)
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.EmployeeNumber = fmt.Sprintf("EMP%04d", nextVal)
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("id", empl.ID.String()),
		zap.String("employee_id", empl.EmployeeNumber),
	)
	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, q ListQuery) (query.Page[EmployeeResponse], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return query.Page[EmployeeResponse]{}, mapRepositoryError(err)
	}
	return query.MapPage(page, mapToResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := applyUpdate(empl, req); err != nil {
		return EmployeeResponse{}, err
	}
	if err := validate(empl, s.now()); err != nil {
		return EmployeeResponse{}, err
	}
	if err := syncDepartmentName(ctx, qtx, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("id", id))
	return nil
}

// syncDepartmentName menyalin nama department setiap kali referensi terisi.
func syncDepartmentName(ctx context.Context, repo Repository, empl *Employee) error {
	empl.DepartmentRef = nil
	if empl.DepartmentID == nil {
		return nil
	}

	name, err := repo.FindDepartmentName(ctx, empl.DepartmentID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrDepartmentNotFound
		}
		return err
	}

	empl.Department = name
	empl.DepartmentRef = &DepartmentRef{ID: *empl.DepartmentID, Name: name}
	return nil
}

func applyUpdate(empl *Employee, req UpdateEmployeeRequest) error {
	if req.EmployeeID != nil {
		empl.EmployeeNumber = strings.TrimSpace(*req.EmployeeID)
	}
	if req.Name != nil {
		empl.Name = strings.TrimSpace(*req.Name)
	}
	if req.Gender != nil {
		empl.Gender = *req.Gender
	}
	if req.DepartmentID != nil {
		// string kosong melepas referensi department
		empl.DepartmentID = uuidPtr(req.DepartmentID)
	}
	if req.Department != nil {
		empl.Department = *req.Department
	}
	if req.Position != nil {
		empl.Position = strings.TrimSpace(*req.Position)
	}
	if req.Phone != nil {
		empl.Phone = *req.Phone
	}
	if req.HireDate != nil {
		hireDate, err := parseDate(*req.HireDate)
		if err != nil {
			return err
		}
		empl.HireDate = hireDate
	}
	if req.BirthDate != nil {
		birthDate, err := parseOptionalDate(*req.BirthDate)
		if err != nil {
			return err
		}
		empl.BirthDate = birthDate
	}
	if req.BaseSalary != nil {
		empl.BaseSalary = *req.BaseSalary
	}
	if req.Status != nil {
		empl.Status = *req.Status
	}
	if req.Location != nil {
		empl.Location = *req.Location
	}
	if req.Notes != nil {
		empl.Notes = *req.Notes
	}
	return nil
}

func validate(empl *Employee, now time.Time) error {
	if empl.Gender != GenderMale && empl.Gender != GenderFemale {
		return employeeerrors.ErrInvalidGender
	}
	switch empl.Status {
	case StatusActive, StatusOnLeave, StatusTerminated:
	default:
		return employeeerrors.ErrInvalidStatus
	}
	if !empl.BaseSalary.IsPositive() || !money.Fits(empl.BaseSalary, money.SalaryIntDigits) {
		return employeeerrors.ErrInvalidBaseSalary
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if empl.HireDate.After(today) {
		return employeeerrors.ErrHireDateInFuture
	}
	if empl.BirthDate != nil {
		days := empl.HireDate.Sub(*empl.BirthDate).Hours() / 24
		if days/365.25 < minAgeAtHireYears {
			return employeeerrors.ErrTooYoungAtHire
		}
	}

	if empl.Phone != "" && !mobilePattern.MatchString(empl.Phone) {
		return employeeerrors.ErrInvalidPhone
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDate
	}
	return t, nil
}

func parseOptionalDate(v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := parseDate(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		EmployeeID:   empl.EmployeeNumber,
		Name:         empl.Name,
		Gender:       empl.Gender,
		Department:   empl.Department,
		DepartmentID: uuidToString(empl.DepartmentID),
		Position:     empl.Position,
		Phone:        empl.Phone,
		HireDate:     empl.HireDate.Format(dateLayout),
		BaseSalary:   empl.BaseSalary.Round(2),
		Status:       empl.Status,
		Location:     empl.Location,
		Notes:        empl.Notes,
		CreatedAt:    empl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    empl.UpdatedAt.Format(time.RFC3339),
	}
	if empl.BirthDate != nil {
		resp.BirthDate = empl.BirthDate.Format(dateLayout)
	}
	if empl.DepartmentRef != nil {
		resp.DepartmentName = empl.DepartmentRef.Name
	}
	return resp
}

func uuidPtr(v *string) *uuid.UUID {
	if v == nil {
		return nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
