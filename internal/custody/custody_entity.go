package custody

import (
	"time"

	"github.com/google/uuid"
)

// Handover actions. Delivery moves a passport to the employee, receipt
// brings it back to the organization.
const (
	ActionDelivery = "delivery"
	ActionReceipt  = "receipt"
)

// Handover is one custody transition. Rows are append-only: there is no
// update or delete path, and they outlive the passport they describe.
type Handover struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PassportID uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	ActionType string    `gorm:"size:20;not null"`
	ActionAt   time.Time `gorm:"not null"`
}

func (Handover) TableName() string {
	return "handovers"
}

// PassportState is the slice of a passport the tracker works with.
type PassportState struct {
	ID             uuid.UUID
	PassportNumber string
	EmployeeID     uuid.UUID
	Custodian      string
}
