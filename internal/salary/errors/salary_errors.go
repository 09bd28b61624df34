package salaryerrors

import "go-payroll/internal/shared/apperror"

var (
	ErrEmployeeNotFound        = apperror.NotFound("Employee not found")
	ErrSalaryRecordNotFound    = apperror.NotFound("Salary record not found")
	ErrSalaryRecordExists      = apperror.Conflict("Salary record for this employee and period already exists")
	ErrInvalidSalaryPeriod     = apperror.Validation("Salary period must be formatted as YYYY-MM")
	ErrNegativeBonus           = apperror.Validation("Bonus must not be negative")
	ErrNegativeDeductions      = apperror.Validation("Deductions must not be negative")
	ErrInvalidBonus            = apperror.Validation("Bonus must have at most 8 integer digits and 2 decimal places")
	ErrInvalidDeductions       = apperror.Validation("Deductions must have at most 8 integer digits and 2 decimal places")
	ErrGrossOutOfRange         = apperror.Validation("Gross salary exceeds 99999999.99")
	ErrInvalidPayDate          = apperror.Validation("Pay date must be formatted as YYYY-MM-DD")
	ErrUnsupportedExportFormat = apperror.Validation("Export format must be csv or xlsx")
)
