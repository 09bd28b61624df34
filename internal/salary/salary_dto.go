package salary

import (
	"net/url"
	"regexp"
	"strconv"

	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/money"
	"go-payroll/internal/shared/query"

	"github.com/shopspring/decimal"
)

var periodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// CalculationInput adalah input kalkulasi yang sudah dinormalisasi.
type CalculationInput struct {
	SalaryPeriod string
	Bonus        decimal.Decimal
	Deductions   decimal.Decimal
}

func (in CalculationInput) Validate() error {
	if !periodPattern.MatchString(in.SalaryPeriod) {
		return salaryerrors.ErrInvalidSalaryPeriod
	}
	month, _ := strconv.Atoi(in.SalaryPeriod[5:])
	if month < 1 || month > 12 {
		return salaryerrors.ErrInvalidSalaryPeriod
	}
	if in.Bonus.IsNegative() {
		return salaryerrors.ErrNegativeBonus
	}
	if in.Deductions.IsNegative() {
		return salaryerrors.ErrNegativeDeductions
	}
	// harus muat di numeric(10,2) supaya net = gross - deductions tetap utuh
	if !money.Fits(in.Bonus, money.SalaryIntDigits) {
		return salaryerrors.ErrInvalidBonus
	}
	if !money.Fits(in.Deductions, money.SalaryIntDigits) {
		return salaryerrors.ErrInvalidDeductions
	}
	return nil
}

// CalculateRequest menerima "deduction" maupun "deductions".
// Kalau keduanya dikirim, "deduction" yang dipakai.
type CalculateRequest struct {
	SalaryPeriod string           `json:"salary_period"`
	Bonus        *decimal.Decimal `json:"bonus"`
	Deduction    *decimal.Decimal `json:"deduction"`
	Deductions   *decimal.Decimal `json:"deductions"`
}

func (r CalculateRequest) Input() CalculationInput {
	in := CalculationInput{
		SalaryPeriod: r.SalaryPeriod,
		Bonus:        decimal.Zero,
		Deductions:   decimal.Zero,
	}
	if r.Bonus != nil {
		in.Bonus = *r.Bonus
	}
	switch {
	case r.Deduction != nil:
		in.Deductions = *r.Deduction
	case r.Deductions != nil:
		in.Deductions = *r.Deductions
	}
	return in
}

type CalculateAndCreateRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CalculateRequest
}

type GenerateRequest struct {
	CalculateRequest
}

type MarkPaidRequest struct {
	PayDate string `json:"pay_date"`
}

type SalaryRecordResponse struct {
	ID           string          `json:"id"`
	EmployeeUUID string          `json:"employee"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Department   string          `json:"department"`
	SalaryPeriod string          `json:"salary_period"`
	Position     string          `json:"position"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Bonus        decimal.Decimal `json:"bonus"`
	Deductions   decimal.Decimal `json:"deductions"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	PayDate      *string         `json:"pay_date"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type GenerateResult struct {
	Created            []SalaryRecordResponse `json:"created"`
	SkippedEmployeeIDs []string               `json:"skipped_employee_ids"`
}

type EmployeeSummary struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Status     string `json:"status"`
}

type HistoryResponse struct {
	Employee      EmployeeSummary        `json:"employee"`
	SalaryRecords []SalaryRecordResponse `json:"salary_records"`
	TotalPages    int                    `json:"total_pages"`
	CurrentPage   int                    `json:"current_page"`
	TotalCount    int64                  `json:"total_count"`
}

type StatsResponse struct {
	Period          string          `json:"period"`
	TotalRecords    int64           `json:"totalRecords"`
	TotalSalary     decimal.Decimal `json:"totalSalary"`
	AverageSalary   decimal.Decimal `json:"averageSalary"`
	DepartmentCount int64           `json:"departmentCount"`
}

type PrintEmployeeInfo struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type PrintSalaryInfo struct {
	SalaryPeriod string  `json:"salary_period"`
	BaseSalary   float64 `json:"base_salary"`
	Bonus        float64 `json:"bonus"`
	Deductions   float64 `json:"deductions"`
	GrossSalary  float64 `json:"gross_salary"`
	NetSalary    float64 `json:"net_salary"`
}

// PrintViewResponse dipakai untuk halaman cetak slip gaji.
type PrintViewResponse struct {
	EmployeeInfo PrintEmployeeInfo `json:"employee_info"`
	SalaryInfo   PrintSalaryInfo   `json:"salary_info"`
	GeneratedAt  string            `json:"generated_at"`
}

var orderingFields = map[string]string{
	"salary_period": "salary_records.salary_period",
	"net_salary":    "salary_records.net_salary",
	"gross_salary":  "salary_records.gross_salary",
	"created_at":    "salary_records.created_at",
}

var defaultOrdering = query.Ordering{Column: "salary_records.created_at", Desc: true}

type ListQuery struct {
	Search       string
	Department   *string
	Position     *string
	SalaryPeriod *string
	MinSalary    *decimal.Decimal
	MaxSalary    *decimal.Decimal
	Ordering     query.Ordering
	Pagination   query.Pagination
}

func ParseListQuery(values url.Values) ListQuery {
	return ListQuery{
		Search:       values.Get("search"),
		Department:   query.OptionalString(values, "department"),
		Position:     query.OptionalString(values, "position"),
		SalaryPeriod: query.OptionalString(values, "salary_period"),
		MinSalary:    query.OptionalDecimal(values, "min_salary"),
		MaxSalary:    query.OptionalDecimal(values, "max_salary"),
		Ordering:     query.ParseOrdering(values.Get("ordering"), orderingFields, defaultOrdering),
		Pagination:   query.ParsePagination(values),
	}
}

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

type ExportQuery struct {
	Department   *string
	SalaryPeriod *string
	Format       string
}

func ParseExportQuery(values url.Values) ExportQuery {
	format := ExportFormatCSV
	if f := query.OptionalString(values, "format"); f != nil {
		format = *f
	}
	return ExportQuery{
		Department:   query.OptionalString(values, "department"),
		SalaryPeriod: query.OptionalString(values, "salary_period"),
		Format:       format,
	}
}
