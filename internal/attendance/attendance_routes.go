package attendance

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("/",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead),
			h.List,
		)
		attendance.POST("/",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionCreate),
			h.Record,
		)
	}
}
