package app

import (
	"os"

	"github.com/seyf-eddine19/HRM/internal/middleware"
	"github.com/seyf-eddine19/HRM/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "hrm.db"
	}
	gormDB, err := connection.ConnectSQLite(dbPath)
	if err != nil {
		return err
	}
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}
	if err := seedOperator(gormDB); err != nil {
		return err
	}

	// Redis backs the lookup cache and import idempotency. Both degrade to
	// hitting the store directly, so a missing Redis is a warning, not a
	// startup failure.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 3)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", zap.Error(err))
			rdb = nil
		}
	}

	docsDir := os.Getenv("DOCS_DIR")
	if docsDir == "" {
		docsDir = "documents"
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, db, gormDB, rdb, docsDir)
}
