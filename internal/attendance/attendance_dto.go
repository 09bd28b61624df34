package attendance

import (
	"net/url"
	"time"

	"go-payroll/internal/shared/query"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type RecordAttendanceRequest struct {
	EmployeeID    string          `json:"employee_id" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	Status        string          `json:"status" binding:"required,oneof=present absent late early_leave sick_leave personal_leave annual_leave overtime"`
	WorkHours     decimal.Decimal `json:"work_hours" binding:"gte=0,lte=24"`
	OvertimeHours decimal.Decimal `json:"overtime_hours" binding:"gte=0,lte=24"`
	Notes         string          `json:"notes"`
}

type AttendanceResponse struct {
	ID            string          `json:"id"`
	Employee      string          `json:"employee"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Department    string          `json:"department"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	WorkHours     decimal.Decimal `json:"work_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Notes         string          `json:"notes"`
	CreatedAt     string          `json:"created_at"`
}

var orderingFields = map[string]string{
	"date":       "attendance_records.date",
	"created_at": "attendance_records.created_at",
}

var defaultOrdering = query.Ordering{Column: "attendance_records.date", Desc: true}

type ListQuery struct {
	Status         *string
	EmployeeNumber *string
	DateFrom       *time.Time
	DateTo         *time.Time
	Ordering       query.Ordering
	Pagination     query.Pagination
}

func optionalDate(values url.Values, key string) *time.Time {
	raw := query.OptionalString(values, key)
	if raw == nil {
		return nil
	}
	d, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil
	}
	return &d
}

func ParseListQuery(values url.Values) ListQuery {
	return ListQuery{
		Status:         query.OptionalString(values, "status"),
		EmployeeNumber: query.OptionalString(values, "employee_id"),
		DateFrom:       optionalDate(values, "date_from"),
		DateTo:         optionalDate(values, "date_to"),
		Ordering:       query.ParseOrdering(values.Get("ordering"), orderingFields, defaultOrdering),
		Pagination:     query.ParsePagination(values),
	}
}
