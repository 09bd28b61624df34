package department

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry the auth middleware.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	departments := r.Group("/departments")
	{
		departments.GET("/",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRead),
			h.List,
		)
		departments.POST("/",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionCreate),
			h.Create,
		)
		departments.GET("/:id/",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRead),
			h.GetByID,
		)
		departments.PUT("/:id/",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionUpdate),
			h.Update,
		)
		departments.PATCH("/:id/",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionUpdate),
			h.Update,
		)
		departments.DELETE("/:id/",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionDelete),
			h.Delete,
		)
	}
}
