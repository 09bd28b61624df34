package employee

import (
	"net/url"

	"go-payroll/internal/shared/query"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	// kosong = dibuat otomatis dari counter
	EmployeeID   string          `json:"employee_id" binding:"omitempty,max=20"`
	Name         string          `json:"name" binding:"required,max=100"`
	Gender       string          `json:"gender" binding:"required,oneof=M F"`
	DepartmentID *string         `json:"department_id" binding:"omitempty,uuid"`
	Department   string          `json:"department" binding:"max=100"`
	Position     string          `json:"position" binding:"required,max=100"`
	Phone        string          `json:"phone" binding:"max=20"`
	HireDate     string          `json:"hire_date" binding:"required,datetime=2006-01-02"`
	BirthDate    string          `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Status       string          `json:"status" binding:"omitempty,oneof=active on_leave terminated"`
	Location     string          `json:"location" binding:"max=100"`
	Notes        string          `json:"notes"`
}

// UpdateEmployeeRequest dipakai oleh PUT dan PATCH; field nil tidak diubah.
type UpdateEmployeeRequest struct {
	EmployeeID   *string          `json:"employee_id" binding:"omitempty,min=1,max=20"`
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Gender       *string          `json:"gender" binding:"omitempty,oneof=M F"`
	DepartmentID *string          `json:"department_id" binding:"omitempty,uuid"`
	Department   *string          `json:"department" binding:"omitempty,max=100"`
	Position     *string          `json:"position" binding:"omitempty,min=1,max=100"`
	Phone        *string          `json:"phone" binding:"omitempty,max=20"`
	HireDate     *string          `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	BirthDate    *string          `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	BaseSalary   *decimal.Decimal `json:"base_salary"`
	Status       *string          `json:"status" binding:"omitempty,oneof=active on_leave terminated"`
	Location     *string          `json:"location" binding:"omitempty,max=100"`
	Notes        *string          `json:"notes"`
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	Name           string          `json:"name"`
	Gender         string          `json:"gender"`
	Department     string          `json:"department"`
	DepartmentID   string          `json:"department_id,omitempty"`
	DepartmentName string          `json:"department_name,omitempty"`
	Position       string          `json:"position"`
	Phone          string          `json:"phone"`
	HireDate       string          `json:"hire_date"`
	BirthDate      string          `json:"birth_date,omitempty"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	Status         string          `json:"status"`
	Location       string          `json:"location"`
	Notes          string          `json:"notes"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

var orderingFields = map[string]string{
	"name":        "employees.name",
	"employee_id": "employees.employee_number",
	"hire_date":   "employees.hire_date",
	"base_salary": "employees.base_salary",
	"created_at":  "employees.created_at",
}

var defaultOrdering = query.Ordering{Column: "employees.created_at", Desc: true}

type ListQuery struct {
	Search           string
	Department       *string
	Position         *string
	Status           *string
	IncludeAllStatus bool
	Ordering         query.Ordering
	Pagination       query.Pagination
}

func ParseListQuery(values url.Values) ListQuery {
	return ListQuery{
		Search:           values.Get("search"),
		Department:       query.OptionalString(values, "department"),
		Position:         query.OptionalString(values, "position"),
		Status:           query.OptionalString(values, "status"),
		IncludeAllStatus: query.OptionalBool(values, "include_all_status"),
		Ordering:         query.ParseOrdering(values.Get("ordering"), orderingFields, defaultOrdering),
		Pagination:       query.ParsePagination(values),
	}
}
