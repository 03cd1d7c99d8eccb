package visa

import (
	"time"

	"github.com/google/uuid"
)

type Visa struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PassportID uuid.UUID  `gorm:"type:uuid;not null;index"`
	VisaNumber string     `gorm:"size:100;not null;uniqueIndex"`
	VisaTypeID *uuid.UUID `gorm:"type:uuid;index"`
	IssueDate  string     `gorm:"size:10"`
	ExpiryDate string     `gorm:"size:10"`
	DocPath    string     `gorm:"size:500"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Row joins a visa with its type name and the owning passport/employee.
type Row struct {
	Visa
	VisaTypeName   string `gorm:"column:visa_type_name"`
	PassportNumber string `gorm:"column:passport_number"`
	EmployeeNameAr string `gorm:"column:employee_name_ar"`
}
