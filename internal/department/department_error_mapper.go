package department

import (
	departmenterrors "go-payroll/internal/department/errors"
	"go-payroll/internal/shared/dberror"
)

var repositoryErrors = dberror.Rules{
	NotFound: departmenterrors.ErrDepartmentNotFound,
	Unique: map[string]error{
		"uq_departments_name": departmenterrors.ErrDepartmentNameExists,
		"uq_departments_code": departmenterrors.ErrDepartmentCodeExists,
		"departments.name":    departmenterrors.ErrDepartmentNameExists,
		"departments.code":    departmenterrors.ErrDepartmentCodeExists,
	},
	// masih direferensikan employee
	ForeignKey: departmenterrors.ErrDepartmentHasEmployees,
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
