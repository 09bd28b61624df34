package salary_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/salary"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/query"

	salaryMock "go-payroll/internal/salary/mock"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(h *salary.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/salaries/", h.List)
	r.GET("/salaries/export/", h.Export)
	r.POST("/salaries/calculate_and_create/", h.CalculateAndCreate)
	r.POST("/salaries/calculate/:id/", h.Calculate)
	r.POST("/salaries/generate/", h.Generate)
	r.GET("/salaries/:id/payslip/", h.Payslip)
	r.POST("/salaries/:id/mark_paid/", h.MarkPaid)
	r.GET("/employees/:id/salary/", h.History)
	return r
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSalaryHandler_CalculateAndCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := salaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			CalculateByEmployeeNumber(gomock.Any(), "EMP0001", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in salary.CalculationInput) (salary.SalaryRecordResponse, error) {
				assert.Equal(t, "2025-01", in.SalaryPeriod)
				assert.Equal(t, "1000", in.Bonus.String())
				assert.Equal(t, "500", in.Deductions.String())
				return salary.SalaryRecordResponse{EmployeeID: "EMP0001", NetSalary: decimal.NewFromInt(12500)}, nil
			})

		w := httptest.NewRecorder()
		setupRouter(salary.NewHandler(svc)).ServeHTTP(w, postJSON("/salaries/calculate_and_create/",
			`{"employee_id":"EMP0001","salary_period":"2025-01","bonus":1000,"deduction":500}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":"EMP0001"`)
	})

	t.Run("missing employee id", func(t *testing.T) {
		svc := salaryMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		setupRouter(salary.NewHandler(svc)).ServeHTTP(w, postJSON("/salaries/calculate_and_create/",
			`{"salary_period":"2025-01"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc := salaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			CalculateByEmployeeNumber(gomock.Any(), "EMP0404", gomock.Any()).
			Return(salary.SalaryRecordResponse{}, salaryerrors.ErrEmployeeNotFound)

		w := httptest.NewRecorder()
		setupRouter(salary.NewHandler(svc)).ServeHTTP(w, postJSON("/salaries/calculate_and_create/",
			`{"employee_id":"EMP0404"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
	})

	t.Run("duplicate period", func(t *testing.T) {
		svc := salaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			CalculateByEmployeeNumber(gomock.Any(), "EMP0001", gomock.Any()).
			Return(salary.SalaryRecordResponse{}, salaryerrors.ErrSalaryRecordExists)

		w := httptest.NewRecorder()
		setupRouter(salary.NewHandler(svc)).ServeHTTP(w, postJSON("/salaries/calculate_and_create/",
			`{"employee_id":"EMP0001","salary_period":"2025-01"}`))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"CONFLICT"`)
	})
}

func TestSalaryHandler_Calculate(t *testing.T) {
	svc := salaryMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		CalculateByEmployeeID(gomock.Any(), "3f1c", gomock.Any()).
		DoAndReturn(func(_ any, _ string, in salary.CalculationInput) (salary.SalaryRecordResponse, error) {
			assert.Equal(t, "200", in.Deductions.String())
			assert.True(t, in.Bonus.IsZero())
			return salary.SalaryRecordResponse{}, nil
		})

	w := httptest.NewRecorder()
	setupRouter(salary.NewHandler(svc)).ServeHTTP(w, postJSON("/salaries/calculate/3f1c/",
		`{"salary_period":"2025-01","deductions":200}`))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSalaryHandler_Generate(t *testing.T) {
	svc := salaryMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		GenerateForAll(gomock.Any(), gomock.Any()).
		Return(salary.GenerateResult{
			Created:            []salary.SalaryRecordResponse{},
			SkippedEmployeeIDs: []string{"EMP0001"},
		}, nil)

	w := httptest.NewRecorder()
	setupRouter(salary.NewHandler(svc)).ServeHTTP(w, postJSON("/salaries/generate/", `{"salary_period":"2025-01"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"created":[],"skipped_employee_ids":["EMP0001"]}}`, w.Body.String())
}

func TestSalaryHandler_List(t *testing.T) {
	svc := salaryMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q salary.ListQuery) (query.Page[salary.SalaryRecordResponse], error) {
			assert.Equal(t, "ana", q.Search)
			assert.Nil(t, q.Department)
			if assert.NotNil(t, q.MinSalary) {
				assert.Equal(t, "5000", q.MinSalary.String())
			}
			assert.Nil(t, q.MaxSalary)
			assert.Equal(t, query.Ordering{Column: "salary_records.net_salary", Desc: true}, q.Ordering)
			assert.Equal(t, query.Pagination{Page: 1, PageSize: 20}, q.Pagination)
			return query.Page[salary.SalaryRecordResponse]{
				Results:     []salary.SalaryRecordResponse{},
				TotalPages:  1,
				CurrentPage: 1,
			}, nil
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/salaries/?search=ana&department=&min_salary=5000&max_salary=lots&ordering=-net_salary&page=x", nil)
	setupRouter(salary.NewHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"results":[],"total_pages":1,"current_page":1,"total_count":0}}`, w.Body.String())
}

func TestSalaryHandler_Export(t *testing.T) {
	svc := salaryMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		Export(gomock.Any(), salary.ExportQuery{Format: salary.ExportFormatCSV}).
		Return(salary.ExportFile{
			Filename:    "salary_records_20250131_090000.csv",
			ContentType: "text/csv; charset=utf-8",
			Body:        []byte("\ufeffEmployee Name\n"),
		}, nil)

	w := httptest.NewRecorder()
	setupRouter(salary.NewHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salaries/export/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="salary_records_20250131_090000.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\ufeff"))
}

func TestSalaryHandler_Payslip(t *testing.T) {
	svc := salaryMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		RenderPayslip(gomock.Any(), "abc").
		Return([]byte("%PDF-1.3"), "payslip_EMP0001_2025-01.pdf", nil)

	w := httptest.NewRecorder()
	setupRouter(salary.NewHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salaries/abc/payslip/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestSalaryHandler_MarkPaid(t *testing.T) {
	t.Run("empty body defaults to today", func(t *testing.T) {
		svc := salaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			MarkPaid(gomock.Any(), "abc", salary.MarkPaidRequest{}).
			Return(salary.SalaryRecordResponse{}, nil)

		w := httptest.NewRecorder()
		setupRouter(salary.NewHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/salaries/abc/mark_paid/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		svc := salaryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().
			MarkPaid(gomock.Any(), "abc", salary.MarkPaidRequest{PayDate: "tomorrow"}).
			Return(salary.SalaryRecordResponse{}, salaryerrors.ErrInvalidPayDate)

		w := httptest.NewRecorder()
		setupRouter(salary.NewHandler(svc)).ServeHTTP(w, postJSON("/salaries/abc/mark_paid/", `{"pay_date":"tomorrow"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalaryHandler_History(t *testing.T) {
	svc := salaryMock.NewMockService(gomock.NewController(t))
	svc.EXPECT().
		History(gomock.Any(), "EMP0001", query.Pagination{Page: 2, PageSize: 5}).
		Return(salary.HistoryResponse{SalaryRecords: []salary.SalaryRecordResponse{}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employees/EMP0001/salary/?page=2&page_size=5", nil)
	setupRouter(salary.NewHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"salary_records":[]`)
}
