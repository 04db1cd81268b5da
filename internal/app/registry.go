package app

import (
	"database/sql"
	"path/filepath"

	"github.com/gaurisankartarasia/emp-2/internal/auth"
	"github.com/gaurisankartarasia/emp-2/internal/employee"
	"github.com/gaurisankartarasia/emp-2/internal/increment"
	"github.com/gaurisankartarasia/emp-2/internal/messaging/kafka"
	"github.com/gaurisankartarasia/emp-2/internal/payrollreport"
	"github.com/gaurisankartarasia/emp-2/internal/rbac"
	"github.com/gaurisankartarasia/emp-2/internal/rbac/infra"
	"github.com/gaurisankartarasia/emp-2/internal/salary"
	"github.com/gaurisankartarasia/emp-2/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	incrementRepo := increment.NewRepository(gormDB)
	reportRepo := payrollreport.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	salaryResolver := salary.NewResolver(salaryRepo)
	salaryService := salary.NewService(salaryRepo, employeeRepo)
	incrementService := increment.NewService(incrementRepo, employeeRepo, taskRepo, salaryResolver)
	reportService := payrollreport.NewServiceWithOutbox(db, reportRepo, employeeRepo, salaryResolver, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	salaryHandler := salary.NewHandler(salaryService)
	incrementHandler := increment.NewHandler(incrementService)
	reportHandler := payrollreport.NewHandlerWithRedis(reportService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		salary.RegisterRoutes(api, salaryHandler, rbacService)
		increment.RegisterRoutes(api, incrementHandler, rbacService)
		payrollreport.RegisterRoutes(api, reportHandler, rbacService, rdb)
	}

	return nil
}
