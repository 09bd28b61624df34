package rbac_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/domain"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	EnforceFn     func(req domain.EnforceRequest) (bool, error)
	PermissionsFn func(role string) ([]domain.PermissionResponse, error)
}

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.EnforceFn(req)
}
func (f *fakeService) Authorize(role, resource, action string) (bool, error) {
	return f.EnforceFn(domain.EnforceRequest{Role: role, Resource: resource, Action: action})
}
func (f *fakeService) PermissionsForRole(role string) ([]domain.PermissionResponse, error) {
	return f.PermissionsFn(role)
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	}
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		EnforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, domain.RoleStaff, req.Role)
			return req.Resource == "employee", nil
		},
	}
	r := gin.New()
	r.POST("/rbac/enforce/", withRole(domain.RoleStaff), rbac.NewHandler(svc).Enforce)

	t.Run("allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce/", strings.NewReader(`{"resource":"employee","action":"read"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("missing action", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce/", strings.NewReader(`{"resource":"employee"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeService{
			PermissionsFn: func(role string) ([]domain.PermissionResponse, error) {
				return []domain.PermissionResponse{{Resource: "employee", Action: "read"}}, nil
			},
		}
		r := gin.New()
		r.GET("/rbac/permissions/", withRole(domain.RoleStaff), rbac.NewHandler(svc).Permissions)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data struct {
				Role        string                      `json:"role"`
				Permissions []domain.PermissionResponse `json:"permissions"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, domain.RoleStaff, body.Data.Role)
		assert.Len(t, body.Data.Permissions, 1)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeService{
			PermissionsFn: func(role string) ([]domain.PermissionResponse, error) {
				return nil, errors.New("boom")
			},
		}
		r := gin.New()
		r.GET("/rbac/permissions/", withRole(domain.RoleStaff), rbac.NewHandler(svc).Permissions)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestRegisterRoutes_RejectsUnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		PermissionsFn: func(role string) ([]domain.PermissionResponse, error) {
			return []domain.PermissionResponse{}, nil
		},
	}

	do := func(role string) int {
		r := gin.New()
		api := r.Group("/api/v1", withRole(role))
		rbac.RegisterRoutes(api, rbac.NewHandler(svc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rbac/permissions/", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do(domain.RoleAdmin))
	assert.Equal(t, http.StatusOK, do(domain.RoleStaff))
	assert.Equal(t, http.StatusForbidden, do("contractor"))
}
