package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/money"
	"go-payroll/internal/shared/query"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	StatsKeyPrefix = "salary:stats:"
	statsTTL       = 5 * time.Minute

	periodLayout = "2006-01"
	dateLayout   = "2006-01-02"
)

func StatsKey(period string) string {
	return StatsKeyPrefix + period
}

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	CalculateByEmployeeNumber(ctx context.Context, employeeNumber string, in CalculationInput) (SalaryRecordResponse, error)
	CalculateByEmployeeID(ctx context.Context, id string, in CalculationInput) (SalaryRecordResponse, error)
	GenerateForAll(ctx context.Context, in CalculationInput) (GenerateResult, error)
	List(ctx context.Context, q ListQuery) (query.Page[SalaryRecordResponse], error)
	GetByID(ctx context.Context, id string) (SalaryRecordResponse, error)
	MarkPaid(ctx context.Context, id string, req MarkPaidRequest) (SalaryRecordResponse, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, employeeRef string, p query.Pagination) (HistoryResponse, error)
	Stats(ctx context.Context) (StatsResponse, error)
	PrintView(ctx context.Context, id string) (PrintViewResponse, error)
	RenderPayslip(ctx context.Context, id string) ([]byte, string, error)
	Export(ctx context.Context, q ExportQuery) (ExportFile, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outbox,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) CalculateByEmployeeNumber(ctx context.Context, employeeNumber string, in CalculationInput) (SalaryRecordResponse, error) {
	return s.calculate(ctx, in, func(repo employee.Repository) (*employee.Employee, error) {
		return repo.FindByEmployeeNumber(ctx, strings.TrimSpace(employeeNumber))
	})
}

func (s *service) CalculateByEmployeeID(ctx context.Context, id string, in CalculationInput) (SalaryRecordResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalaryRecordResponse{}, salaryerrors.ErrEmployeeNotFound
	}
	return s.calculate(ctx, in, func(repo employee.Repository) (*employee.Employee, error) {
		return repo.FindByID(ctx, id)
	})
}

// calculate menjalankan urutan cek: employee harus ada, input harus valid,
// lalu periode belum pernah dihitung.
func (s *service) calculate(
	ctx context.Context,
	in CalculationInput,
	resolve func(employee.Repository) (*employee.Employee, error),
) (SalaryRecordResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	defer tx.Rollback()

	empl, err := resolve(s.employees.WithTx(tx))
	if err != nil {
		return SalaryRecordResponse{}, mapEmployeeLookupError(err)
	}

	if err := in.Validate(); err != nil {
		return SalaryRecordResponse{}, err
	}

	record, err := s.createRecord(ctx, tx, empl, in)
	if err != nil {
		return SalaryRecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SalaryRecordResponse{}, err
	}
	s.invalidateStats(ctx)

	s.logger.Info("salary record created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", empl.EmployeeNumber),
		zap.String("salary_period", record.SalaryPeriod),
		zap.String("net_salary", record.NetSalary.StringFixed(2)),
	)

	return mapToResponse(*record), nil
}

func (s *service) createRecord(ctx context.Context, tx *sql.Tx, empl *employee.Employee, in CalculationInput) (*SalaryRecord, error) {
	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, empl.ID.String(), in.SalaryPeriod)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, salaryerrors.ErrSalaryRecordExists
	}

	record := newRecord(empl, takeSnapshot(empl), in)
	if !money.Fits(record.GrossSalary, money.SalaryIntDigits) {
		return nil, salaryerrors.ErrGrossOutOfRange
	}
	if err := qtx.Create(ctx, record); err != nil {
		return nil, mapRepositoryError(err)
	}
	record.Employee = empl

	if s.outbox != nil {
		if err := s.enqueueCreated(ctx, tx, record); err != nil {
			return nil, err
		}
	}
	return record, nil
}

func (s *service) enqueueCreated(ctx context.Context, tx *sql.Tx, record *SalaryRecord) error {
	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(
		rid,
		"salary_record",
		record.ID.String(),
		events.SalaryRecordCreatedType,
		events.SalaryRecordCreatedTopic,
		events.SalaryRecordCreatedEvent{
			EventType:      events.SalaryRecordCreatedType,
			RequestID:      rid,
			SalaryRecordID: record.ID.String(),
			EmployeeID:     record.Employee.EmployeeNumber,
			SalaryPeriod:   record.SalaryPeriod,
			NetSalary:      record.NetSalary.StringFixed(2),
			OccurredAt:     s.now().UTC(),
		},
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

// GenerateForAll membuat record untuk semua employee dalam satu periode.
// Setiap employee punya transaksi sendiri; employee yang sudah punya record
// dilewati dan dicatat di SkippedEmployeeIDs.
func (s *service) GenerateForAll(ctx context.Context, in CalculationInput) (GenerateResult, error) {
	result := GenerateResult{
		Created:            []SalaryRecordResponse{},
		SkippedEmployeeIDs: []string{},
	}

	if err := in.Validate(); err != nil {
		return result, err
	}

	empls, err := s.employees.FindAll(ctx)
	if err != nil {
		return result, err
	}

	for i := range empls {
		empl := &empls[i]
		record, err := s.generateOne(ctx, empl, in)
		switch {
		case errors.Is(err, salaryerrors.ErrSalaryRecordExists):
			result.SkippedEmployeeIDs = append(result.SkippedEmployeeIDs, empl.EmployeeNumber)
			continue
		case err != nil:
			s.logger.Error("salary generation aborted",
				zap.String("employee_id", empl.EmployeeNumber),
				zap.Int("created", len(result.Created)),
				zap.Error(err),
			)
			if len(result.Created) > 0 {
				s.invalidateStats(ctx)
			}
			return result, err
		}
		result.Created = append(result.Created, mapToResponse(*record))
	}

	if len(result.Created) > 0 {
		s.invalidateStats(ctx)
	}

	s.logger.Info("salary generation finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("salary_period", in.SalaryPeriod),
		zap.Int("created", len(result.Created)),
		zap.Int("skipped", len(result.SkippedEmployeeIDs)),
	)

	return result, nil
}

func (s *service) generateOne(ctx context.Context, empl *employee.Employee, in CalculationInput) (*SalaryRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	record, err := s.createRecord(ctx, tx, empl, in)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) List(ctx context.Context, q ListQuery) (query.Page[SalaryRecordResponse], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return query.Page[SalaryRecordResponse]{}, err
	}
	return query.MapPage(page, mapToResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryRecordResponse, error) {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return SalaryRecordResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) MarkPaid(ctx context.Context, id string, req MarkPaidRequest) (SalaryRecordResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SalaryRecordResponse{}, salaryerrors.ErrSalaryRecordNotFound
	}

	payDate := s.now().UTC().Truncate(24 * time.Hour)
	if raw := strings.TrimSpace(req.PayDate); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return SalaryRecordResponse{}, salaryerrors.ErrInvalidPayDate
		}
		payDate = parsed
	}

	if err := s.repo.MarkPaid(ctx, id, payDate); err != nil {
		return SalaryRecordResponse{}, mapRepositoryError(err)
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return salaryerrors.ErrSalaryRecordNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.invalidateStats(ctx)
	return nil
}

// History menerima id internal maupun business key employee.
func (s *service) History(ctx context.Context, employeeRef string, p query.Pagination) (HistoryResponse, error) {
	var (
		empl *employee.Employee
		err  error
	)
	employeeRef = strings.TrimSpace(employeeRef)
	if _, parseErr := uuid.Parse(employeeRef); parseErr == nil {
		empl, err = s.employees.FindByID(ctx, employeeRef)
	} else {
		empl, err = s.employees.FindByEmployeeNumber(ctx, employeeRef)
	}
	if err != nil {
		return HistoryResponse{}, mapEmployeeLookupError(err)
	}

	page, err := s.repo.ListByEmployee(ctx, empl.ID.String(), p)
	if err != nil {
		return HistoryResponse{}, err
	}
	mapped := query.MapPage(page, mapToResponse)

	return HistoryResponse{
		Employee: EmployeeSummary{
			ID:         empl.ID.String(),
			EmployeeID: empl.EmployeeNumber,
			Name:       empl.Name,
			Department: empl.Department,
			Position:   empl.Position,
			Status:     empl.Status,
		},
		SalaryRecords: mapped.Results,
		TotalPages:    mapped.TotalPages,
		CurrentPage:   mapped.CurrentPage,
		TotalCount:    mapped.TotalCount,
	}, nil
}

// Stats di-cache per periode berjalan; cache dihapus setiap kali ada
// record baru atau record dihapus.
func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	period := s.now().UTC().Format(periodLayout)
	cacheKey := StatsKey(period)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp StatsResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		totals, err := s.repo.Totals(ctx, period)
		if err != nil {
			return nil, err
		}

		resp := StatsResponse{
			Period:          period,
			TotalRecords:    totals.TotalRecords,
			TotalSalary:     totals.TotalSalary.Round(2),
			AverageSalary:   totals.AverageSalary.Round(2),
			DepartmentCount: totals.DepartmentCount,
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, statsTTL).Err(); err != nil {
					s.logger.Warn("cache salary stats failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return StatsResponse{}, err
	}
	return v.(StatsResponse), nil
}

func (s *service) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	cacheKey := StatsKey(s.now().UTC().Format(periodLayout))
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Warn("invalidate salary stats failed",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func (s *service) PrintView(ctx context.Context, id string) (PrintViewResponse, error) {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return PrintViewResponse{}, err
	}
	return mapToPrintView(*record), nil
}

func (s *service) RenderPayslip(ctx context.Context, id string) ([]byte, string, error) {
	record, err := s.findRecord(ctx, id)
	if err != nil {
		return nil, "", err
	}

	pdf, err := renderPayslipPDF(mapToPrintView(*record))
	if err != nil {
		return nil, "", err
	}
	return pdf, payslipFilename(*record), nil
}

func (s *service) Export(ctx context.Context, q ExportQuery) (ExportFile, error) {
	if q.Format != ExportFormatCSV && q.Format != ExportFormatXLSX {
		return ExportFile{}, salaryerrors.ErrUnsupportedExportFormat
	}

	records, err := s.repo.ListForExport(ctx, q)
	if err != nil {
		return ExportFile{}, err
	}

	name := "salary_records_" + s.now().Format("20060102_150405")
	if q.Format == ExportFormatXLSX {
		return writeXLSX(name, records)
	}
	return writeCSV(name, records)
}

func (s *service) findRecord(ctx context.Context, id string) (*SalaryRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, salaryerrors.ErrSalaryRecordNotFound
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return record, nil
}

func mapToResponse(r SalaryRecord) SalaryRecordResponse {
	resp := SalaryRecordResponse{
		ID:           r.ID.String(),
		EmployeeUUID: r.EmployeeID.String(),
		SalaryPeriod: r.SalaryPeriod,
		Position:     r.PositionSnapshot,
		BaseSalary:   r.BaseSalarySnapshot.Round(2),
		Bonus:        r.Bonus.Round(2),
		Deductions:   r.Deductions.Round(2),
		GrossSalary:  r.GrossSalary.Round(2),
		NetSalary:    r.NetSalary.Round(2),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
	if r.Employee != nil {
		resp.EmployeeID = r.Employee.EmployeeNumber
		resp.EmployeeName = r.Employee.Name
		resp.Department = r.Employee.Department
	}
	if r.PayDate != nil {
		d := r.PayDate.Format(dateLayout)
		resp.PayDate = &d
	}
	return resp
}

func mapToPrintView(r SalaryRecord) PrintViewResponse {
	view := PrintViewResponse{
		SalaryInfo: PrintSalaryInfo{
			SalaryPeriod: r.SalaryPeriod,
			BaseSalary:   r.BaseSalarySnapshot.InexactFloat64(),
			Bonus:        r.Bonus.InexactFloat64(),
			Deductions:   r.Deductions.InexactFloat64(),
			GrossSalary:  r.GrossSalary.InexactFloat64(),
			NetSalary:    r.NetSalary.InexactFloat64(),
		},
		GeneratedAt: r.CreatedAt.Format(time.RFC3339),
	}
	view.EmployeeInfo.Position = r.PositionSnapshot
	if r.Employee != nil {
		view.EmployeeInfo.Name = r.Employee.Name
		view.EmployeeInfo.EmployeeID = r.Employee.EmployeeNumber
		view.EmployeeInfo.Department = r.Employee.Department
	}
	return view
}
