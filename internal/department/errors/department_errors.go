package departmenterrors

import "go-payroll/internal/shared/apperror"

var (
	ErrDepartmentNotFound     = apperror.NotFound("Department not found")
	ErrDepartmentNameExists   = apperror.Conflict("Department with the same name already exists")
	ErrDepartmentCodeExists   = apperror.Conflict("Department with the same code already exists")
	ErrDepartmentHasEmployees = apperror.Conflict("Department still has employees")
	ErrNegativeBudget         = apperror.Validation("Budget must not be negative")
	ErrInvalidBudget          = apperror.Validation("Budget must have at most 13 integer digits and 2 decimal places")
	ErrInvalidPhone           = apperror.Validation("Phone may only contain digits, spaces and + - ( )")
	ErrInvalidStatus          = apperror.Validation("Status must be active or inactive")
)
