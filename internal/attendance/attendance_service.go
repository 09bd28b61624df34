package attendance

import (
	"context"
	"database/sql"
	"strings"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/money"
	"go-payroll/internal/shared/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxHours = decimal.NewFromInt(24)

// jam kerja dan lembur sama-sama 0..24 dengan maksimal 2 desimal (numeric(4,2))
func validHours(h decimal.Decimal) bool {
	return !h.IsNegative() && !h.GreaterThan(maxHours) && money.Fits(h, money.HoursIntDigits)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, q ListQuery) (query.Page[AttendanceResponse], error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

// Record dipakai proses ingest absensi; satu record per employee per hari.
func (s *service) Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return AttendanceResponse{}, attendanceerrors.ErrDateInFuture
	}
	if !validHours(req.WorkHours) || !validHours(req.OvertimeHours) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidHours
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindEmployee(ctx, strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	row := &AttendanceRecord{
		ID:            uuid.New(),
		EmployeeID:    empl.ID,
		Date:          date,
		Status:        req.Status,
		WorkHours:     req.WorkHours,
		OvertimeHours: req.OvertimeHours,
		Notes:         strings.TrimSpace(req.Notes),
		Employee:      empl,
	}
	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Debug("attendance recorded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", empl.EmployeeNumber),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, q ListQuery) (query.Page[AttendanceResponse], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return query.Page[AttendanceResponse]{}, err
	}
	return query.MapPage(page, mapToResponse), nil
}

func mapToResponse(a AttendanceRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID.String(),
		Employee:      a.EmployeeID.String(),
		Date:          a.Date.Format(dateLayout),
		Status:        a.Status,
		WorkHours:     a.WorkHours.Round(2),
		OvertimeHours: a.OvertimeHours.Round(2),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
	if a.Employee != nil {
		resp.EmployeeID = a.Employee.EmployeeNumber
		resp.EmployeeName = a.Employee.Name
		resp.Department = a.Employee.Department
	}
	return resp
}
