package rbac

import (
	"go-payroll/internal/domain"
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry the auth middleware. Tokens with
// a role outside the policy are rejected before reaching the handler.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac", middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleStaff))
	{
		group.GET("/permissions/", handler.Permissions)
		group.POST("/enforce/", handler.Enforce)
	}
}
