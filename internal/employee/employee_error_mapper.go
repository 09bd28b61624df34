package employee

import (
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/dberror"
)

var repositoryErrors = dberror.Rules{
	NotFound: employeeerrors.ErrEmployeeNotFound,
	Unique: map[string]error{
		"uq_employees_employee_number": employeeerrors.ErrEmployeeNumberAlreadyExists,
		"employees.employee_number":    employeeerrors.ErrEmployeeNumberAlreadyExists,
	},
	ForeignKey: employeeerrors.ErrDepartmentNotFound,
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
