package app

import (
	"database/sql"

	"go-payroll/internal/attendance"
	"go-payroll/internal/config"
	"go-payroll/internal/dashboard"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewDefaultService(logger)
	if err != nil {
		return err
	}

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo, logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, logger)
	salaryService := salary.NewService(db, salaryRepo, employeeRepo, outboxRepo, rdb, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, logger)
	dashboardService := dashboard.NewService(dashboardRepo, attendanceRepo, rdb, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1",
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.ContextLogger(logger),
	)
	{
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		salary.RegisterRoutes(api, salaryHandler, rbacService, rdb, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
