package department

import (
	"net/url"

	"go-payroll/internal/shared/query"

	"github.com/shopspring/decimal"
)

type CreateDepartmentRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Code         string          `json:"code" binding:"required,max=20"`
	Description  string          `json:"description"`
	Manager      string          `json:"manager" binding:"max=100"`
	ManagerTitle string          `json:"manager_title" binding:"max=100"`
	Location     string          `json:"location" binding:"max=200"`
	Phone        string          `json:"phone" binding:"max=20"`
	Email        string          `json:"email" binding:"omitempty,email"`
	Budget       decimal.Decimal `json:"budget"`
	Status       string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateDepartmentRequest dipakai oleh PUT dan PATCH; field nil tidak diubah.
type UpdateDepartmentRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Code         *string          `json:"code" binding:"omitempty,min=1,max=20"`
	Description  *string          `json:"description"`
	Manager      *string          `json:"manager" binding:"omitempty,max=100"`
	ManagerTitle *string          `json:"manager_title" binding:"omitempty,max=100"`
	Location     *string          `json:"location" binding:"omitempty,max=200"`
	Phone        *string          `json:"phone" binding:"omitempty,max=20"`
	Email        *string          `json:"email" binding:"omitempty,email"`
	Budget       *decimal.Decimal `json:"budget"`
	Status       *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

type DepartmentResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	Manager       string          `json:"manager"`
	ManagerTitle  string          `json:"manager_title"`
	Location      string          `json:"location"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Budget        decimal.Decimal `json:"budget"`
	Status        string          `json:"status"`
	EmployeeCount int64           `json:"employee_count"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

var orderingFields = map[string]string{
	"name":       "departments.name",
	"code":       "departments.code",
	"budget":     "departments.budget",
	"created_at": "departments.created_at",
}

var defaultOrdering = query.Ordering{Column: "departments.created_at", Desc: true}

// ListQuery adalah opsi listing department yang sudah di-parse.
type ListQuery struct {
	Search     string
	Status     *string
	Ordering   query.Ordering
	Pagination query.Pagination
}

func ParseListQuery(values url.Values) ListQuery {
	return ListQuery{
		Search:     values.Get("search"),
		Status:     query.OptionalString(values, "status"),
		Ordering:   query.ParseOrdering(values.Get("ordering"), orderingFields, defaultOrdering),
		Pagination: query.ParsePagination(values),
	}
}
