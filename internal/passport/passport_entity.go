package passport

import (
	"time"

	"github.com/google/uuid"
)

// Custodian values form the two-state custody machine. A passport is always
// in exactly one of them; new passports start with the organization.
const (
	CustodianOrganization = "organization"
	CustodianEmployee     = "employee"
)

type Passport struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PassportNumber string     `gorm:"size:100;not null;uniqueIndex"`
	PassportTypeID *uuid.UUID `gorm:"type:uuid;index"`
	IssueDate      string     `gorm:"size:10"`
	ExpiryDate     string     `gorm:"size:10"`
	IssueAuthority string     `gorm:"size:255"`
	DeliveredBy    string     `gorm:"size:255"`
	ReceivedBy     string     `gorm:"size:255"`
	ReceivedAt     string     `gorm:"size:30"`
	Custodian      string     `gorm:"size:20;not null;default:'organization'"`
	DocPath        string     `gorm:"size:500"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Row joins a passport with its type name and owner names for list reads.
type Row struct {
	Passport
	PassportTypeName string `gorm:"column:passport_type_name"`
	EmployeeNameAr   string `gorm:"column:employee_name_ar"`
	GeneralNumber    string `gorm:"column:general_number"`
}
