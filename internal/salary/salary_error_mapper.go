package salary

import (
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/dberror"
)

var repositoryErrors = dberror.Rules{
	NotFound: salaryerrors.ErrSalaryRecordNotFound,
	Unique: map[string]error{
		PeriodConstraint:               salaryerrors.ErrSalaryRecordExists,
		"salary_records.salary_period": salaryerrors.ErrSalaryRecordExists,
	},
	ForeignKey: salaryerrors.ErrEmployeeNotFound,
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}

// mapEmployeeLookupError dipakai saat resolve employee sebelum kalkulasi.
func mapEmployeeLookupError(err error) error {
	if dberror.IsNotFound(err) {
		return salaryerrors.ErrEmployeeNotFound
	}
	return err
}
