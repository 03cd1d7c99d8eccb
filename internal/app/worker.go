package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seyf-eddine19/HRM/internal/messaging/kafka"
	"github.com/seyf-eddine19/HRM/internal/messaging/kafka/producer"
	"github.com/seyf-eddine19/HRM/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka. It shares the store file with the
// API process; WAL mode lets both hold the database at once.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "hrm.db"
	}
	gormDB, err := connection.ConnectSQLite(dbPath)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
