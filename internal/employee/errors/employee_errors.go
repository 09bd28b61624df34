package employeeerrors

import "go-payroll/internal/shared/apperror"

var (
	ErrEmployeeNotFound            = apperror.NotFound("Employee not found")
	ErrEmployeeNumberAlreadyExists = apperror.Conflict("Employee ID already exists")
	ErrDepartmentNotFound          = apperror.NotFound("Department not found")
	ErrInvalidBaseSalary           = apperror.Validation("Base salary must be greater than 0 with at most 8 integer digits and 2 decimal places")
	ErrHireDateInFuture            = apperror.Validation("Hire date cannot be in the future")
	ErrTooYoungAtHire              = apperror.Validation("Employee must be at least 16 years old at hire date")
	ErrInvalidDate                 = apperror.Validation("Invalid date format, expected YYYY-MM-DD")
	ErrInvalidPhone                = apperror.Validation("Invalid mobile phone number")
	ErrInvalidGender               = apperror.Validation("Gender must be M or F")
	ErrInvalidStatus               = apperror.Validation("Status must be one of active, on_leave, terminated")
)
