package attendanceerrors

import "go-payroll/internal/shared/apperror"

var (
	ErrEmployeeNotFound = apperror.NotFound("Employee not found")
	ErrAttendanceExists = apperror.Conflict("Attendance for this employee and date already exists")
	ErrInvalidDate      = apperror.Validation("Date must be formatted as YYYY-MM-DD")
	ErrDateInFuture     = apperror.Validation("Attendance date cannot be in the future")
	ErrInvalidHours     = apperror.Validation("Work and overtime hours must be between 0 and 24 with at most 2 decimal places")
)
