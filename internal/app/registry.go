package app

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"go-timekeep/internal/auth"
	"go-timekeep/internal/employee"
	"go-timekeep/internal/inquiry"
	"go-timekeep/internal/messaging/kafka"
	"go-timekeep/internal/payment"
	"go-timekeep/internal/payrate"
	"go-timekeep/internal/rbac"
	"go-timekeep/internal/rbac/infra"
	"go-timekeep/internal/shared/counter"
	"go-timekeep/internal/timesheet"

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
	loc := time.Local
	if tz := os.Getenv("APP_TIMEZONE"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return err
		}
		loc = parsed
	}

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	paymentRepo := payment.NewRepository(gormDB)
	payrateRepo := payrate.NewRepository(gormDB)
	inquiryRepo := inquiry.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	modelPath := os.Getenv("RBAC_MODEL_PATH")
	if modelPath == "" {
		modelPath = filepath.Join("internal", "rbac", "infra", "model.conf")
	}
	enforcer, err := infra.NewEnforcer(modelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(db, authRepo, employeeRepo, counterRepo)
	employeeService := employee.NewService(employeeRepo)
	timesheetService := timesheet.NewServiceWithOutbox(db, timesheetRepo, outboxRepo, loc)
	paymentService := payment.NewService(db, paymentRepo, rdb)
	payrateService := payrate.NewService(db, payrateRepo, paymentService)
	inquiryService := inquiry.NewService(db, inquiryRepo, counterRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	timesheetHandler := timesheet.NewHandler(timesheetService)
	paymentHandler := payment.NewHandler(paymentService)
	payrateHandler := payrate.NewHandlerWithRedis(payrateService, rdb)
	inquiryHandler := inquiry.NewHandler(inquiryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		timesheet.RegisterRoutes(api, timesheetHandler)
		payment.RegisterRoutes(api, paymentHandler, rbacService)
		payrate.RegisterRoutes(api, payrateHandler, rdb)
		inquiry.RegisterRoutes(api, inquiryHandler, rbacService)
	}

	return nil
}
