package department_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/department"
	departmenterrors "go-payroll/internal/department/errors"
	"go-payroll/internal/shared/query"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	ListFn    func(ctx context.Context, q department.ListQuery) (query.Page[department.DepartmentResponse], error)
	GetByIDFn func(ctx context.Context, id string) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) List(ctx context.Context, q department.ListQuery) (query.Page[department.DepartmentResponse], error) {
	return f.ListFn(ctx, q)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(h *department.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/departments/", h.List)
	r.POST("/departments/", h.Create)
	r.GET("/departments/:id/", h.GetByID)
	r.PATCH("/departments/:id/", h.Update)
	r.DELETE("/departments/:id/", h.Delete)
	return r
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				assert.Equal(t, "Engineering", req.Name)
				assert.Equal(t, "12000.50", req.Budget.StringFixed(2))
				return department.DepartmentResponse{ID: uuid.NewString(), Name: req.Name, Code: req.Code}, nil
			},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments/",
			strings.NewReader(`{"name":"Engineering","code":"ENG","budget":"12000.50"}`))
		req.Header.Set("Content-Type", "application/json")

		setupRouter(department.NewHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Engineering"`)
	})

	t.Run("missing code", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments/", strings.NewReader(`{"name":"Engineering"}`))
		req.Header.Set("Content-Type", "application/json")

		setupRouter(department.NewHandler(&fakeDepartmentService{})).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("bad status", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/departments/",
			strings.NewReader(`{"name":"Engineering","code":"ENG","status":"closed"}`))
		req.Header.Set("Content-Type", "application/json")

		setupRouter(department.NewHandler(&fakeDepartmentService{})).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDepartmentHandler_List(t *testing.T) {
	var got department.ListQuery
	svc := &fakeDepartmentService{
		ListFn: func(ctx context.Context, q department.ListQuery) (query.Page[department.DepartmentResponse], error) {
			got = q
			return query.Page[department.DepartmentResponse]{
				Results:     []department.DepartmentResponse{},
				TotalPages:  1,
				CurrentPage: 1,
			}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/departments/?search=eng&status=active&ordering=-budget&page=abc", nil)
	setupRouter(department.NewHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"results":[],"total_pages":1,"current_page":1,"total_count":0}}`, w.Body.String())
	assert.Equal(t, "eng", got.Search)
	assert.Equal(t, "active", *got.Status)
	assert.Equal(t, query.Ordering{Column: "departments.budget", Desc: true}, got.Ordering)
	assert.Equal(t, query.Pagination{Page: 1, PageSize: 20}, got.Pagination)
}

func TestDepartmentHandler_Delete(t *testing.T) {
	t.Run("protected", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, id string) error {
				return departmenterrors.ErrDepartmentHasEmployees
			},
		}
		w := httptest.NewRecorder()
		setupRouter(department.NewHandler(svc)).ServeHTTP(w,
			httptest.NewRequest(http.MethodDelete, "/departments/"+uuid.NewString()+"/", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "Department still has employees")
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, id string) error { return nil },
		}
		w := httptest.NewRecorder()
		setupRouter(department.NewHandler(svc)).ServeHTTP(w,
			httptest.NewRequest(http.MethodDelete, "/departments/"+uuid.NewString()+"/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})
}

func TestDepartmentHandler_Update(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeDepartmentService{
		UpdateFn: func(ctx context.Context, gotID string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
			assert.Equal(t, id, gotID)
			assert.Nil(t, req.Code)
			assert.Equal(t, "Platform", *req.Name)
			return department.DepartmentResponse{ID: id, Name: *req.Name}, nil
		},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/departments/"+id+"/", strings.NewReader(`{"name":"Platform"}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(department.NewHandler(svc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
