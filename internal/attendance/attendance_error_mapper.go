package attendance

import (
	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/shared/dberror"
)

var repositoryErrors = dberror.Rules{
	NotFound: attendanceerrors.ErrEmployeeNotFound,
	Unique: map[string]error{
		"uq_attendance_records_employee_date": attendanceerrors.ErrAttendanceExists,
		"attendance_records.date":             attendanceerrors.ErrAttendanceExists,
	},
	ForeignKey: attendanceerrors.ErrEmployeeNotFound,
}

func mapRepositoryError(err error) error {
	return repositoryErrors.Map(err)
}
