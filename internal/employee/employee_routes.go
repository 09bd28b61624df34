package employee

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry the auth middleware.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	employees := r.Group("/employees")
	{
		employees.GET("/",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.List,
		)

		employees.GET("/:id/",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionRead),
			handler.GetByID,
		)

		employees.POST("/",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionCreate),
			handler.Create,
		)

		employees.PUT("/:id/",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionUpdate),
			handler.Update,
		)

		employees.PATCH("/:id/",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionUpdate),
			handler.Update,
		)

		employees.DELETE("/:id/",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceEmployee, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
