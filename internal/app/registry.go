package app

import (
	"database/sql"
	"path/filepath"

	"github.com/seyf-eddine19/HRM/internal/auth"
	"github.com/seyf-eddine19/HRM/internal/authz"
	"github.com/seyf-eddine19/HRM/internal/custody"
	"github.com/seyf-eddine19/HRM/internal/document"
	"github.com/seyf-eddine19/HRM/internal/employee"
	"github.com/seyf-eddine19/HRM/internal/exchange"
	"github.com/seyf-eddine19/HRM/internal/expiry"
	"github.com/seyf-eddine19/HRM/internal/lookup"
	"github.com/seyf-eddine19/HRM/internal/messaging/kafka"
	"github.com/seyf-eddine19/HRM/internal/passport"
	"github.com/seyf-eddine19/HRM/internal/visa"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	docsDir string,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	custodyRepo := custody.NewRepository(db)
	employeeRepo := employee.NewRepository(gormDB, db)
	exchangeRepo := exchange.NewRepository(db)
	lookupRepo := lookup.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	passportRepo := passport.NewRepository(gormDB)
	visaRepo := visa.NewRepository(gormDB)

	docStore := document.NewStore(docsDir)

	// --- RBAC Core ---
	enforcer, err := authz.NewEnforcer(
		filepath.Join("internal", "authz", "model.conf"),
		filepath.Join("internal", "authz", "policy.csv"),
	)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	custodyService := custody.NewService(db, custodyRepo, outboxRepo)
	employeeService := employee.NewService(db, employeeRepo, lookupRepo, outboxRepo, docStore)
	lookupService := lookup.NewService(lookupRepo, rdb)
	passportService := passport.NewService(passportRepo, employeeRepo, lookupRepo)
	visaService := visa.NewService(visaRepo, passportRepo, lookupRepo)
	exchangeService := exchange.NewService(exchangeRepo, employeeRepo, passportRepo, visaRepo, lookupService)
	expiryService := expiry.NewService(passportRepo, visaRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	custodyHandler := custody.NewHandler(custodyService)
	employeeHandler := employee.NewHandler(employeeService)
	exchangeHandler := exchange.NewHandler(exchangeService)
	expiryHandler := expiry.NewHandler(expiryService)
	lookupHandler := lookup.NewHandler(lookupService)
	passportHandler := passport.NewHandler(passportService)
	visaHandler := visa.NewHandler(visaService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		custody.RegisterRoutes(api, custodyHandler, enforcer)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		exchange.RegisterRoutes(api, exchangeHandler, enforcer, rdb)
		expiry.RegisterRoutes(api, expiryHandler, enforcer)
		lookup.RegisterRoutes(api, lookupHandler, enforcer)
		passport.RegisterRoutes(api, passportHandler, enforcer)
		visa.RegisterRoutes(api, visaHandler, enforcer)
	}

	return nil
}
