package salary

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RegisterRoutes expects r to already carry the auth middleware.
// Route statis didaftarkan sebelum /:id/ supaya tidak tertangkap sebagai id.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	idempotent := middleware.Idempotency(rdb, logger)

	salaries := r.Group("/salaries")
	{
		salaries.GET("/",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionRead),
			handler.List,
		)

		salaries.GET("/stats/",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionRead),
			handler.Stats,
		)

		salaries.GET("/export/",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionExport),
			handler.Export,
		)

		salaries.POST("/calculate_and_create/",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionCreate),
			idempotent,
			handler.CalculateAndCreate,
		)

		salaries.POST("/calculate/:id/",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionCreate),
			idempotent,
			handler.Calculate,
		)

		salaries.POST("/generate/",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionCreate),
			idempotent,
			handler.Generate,
		)

		salaries.GET("/:id/",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionRead),
			handler.GetByID,
		)

		salaries.GET("/:id/print_view/",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionRead),
			handler.PrintView,
		)

		salaries.GET("/:id/payslip/",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionRead),
			handler.Payslip,
		)

		salaries.POST("/:id/mark_paid/",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionUpdate),
			handler.MarkPaid,
		)

		salaries.DELETE("/:id/",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionDelete),
			handler.Delete,
		)
	}

	r.GET("/employees/:id/salary/",
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, rbac.ResourceSalary, rbac.ActionRead),
		handler.History,
	)
}
