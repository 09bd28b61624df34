package dashboard

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(
		middleware.RateLimitByUser(5, 20),
		middleware.RBACAuthorize(rbacService, rbac.ResourceDashboard, rbac.ActionRead),
	)
	{
		dashboard.GET("/summary-stats/", h.SummaryStats)
		dashboard.GET("/department-distribution/", h.DepartmentDistribution)
	}
}
