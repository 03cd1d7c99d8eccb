package app

import (
	"github.com/seyf-eddine19/HRM/internal/auth"
	"github.com/seyf-eddine19/HRM/internal/custody"
	"github.com/seyf-eddine19/HRM/internal/employee"
	"github.com/seyf-eddine19/HRM/internal/lookup"
	"github.com/seyf-eddine19/HRM/internal/passport"
	"github.com/seyf-eddine19/HRM/internal/visa"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The outbox table is raw SQL everywhere else, so its schema is declared
// the same way rather than through a gorm model.
const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id            TEXT PRIMARY KEY,
	request_id    TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id  TEXT NOT NULL,
	event_type    TEXT NOT NULL,
	topic         TEXT NOT NULL,
	payload       BLOB NOT NULL,
	status        TEXT NOT NULL DEFAULT 'pending',
	retry_count   INTEGER NOT NULL DEFAULT 0,
	error_message TEXT,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	next_retry_at TIMESTAMP,
	processed_at  TIMESTAMP
)`

const outboxIndexDDL = `
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
ON outbox_events (status, created_at)`

func migrate(gormDB *gorm.DB) error {
	// Each lookup kind gets its own table built from the same value shape.
	for _, kind := range lookup.Kinds() {
		if err := gormDB.Table(kind.Table()).AutoMigrate(&lookup.Value{}); err != nil {
			return err
		}
	}

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&passport.Passport{},
		&visa.Visa{},
		&custody.Handover{},
		&auth.Operator{},
	); err != nil {
		return err
	}

	if err := gormDB.Exec(outboxDDL).Error; err != nil {
		return err
	}
	return gormDB.Exec(outboxIndexDDL).Error
}

// seedOperator inserts the single credential row on a fresh store. The
// default password is meant to be replaced through the credentials
// endpoint on first login.
func seedOperator(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&auth.Operator{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("change-me"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	zap.L().Named("app.migrate").Warn("seeding default operator credentials",
		zap.String("username", "admin"),
	)
	return gormDB.Create(&auth.Operator{
		ID:       auth.OperatorRowID,
		Username: "admin",
		Password: string(hash),
		Role:     "admin",
	}).Error
}
