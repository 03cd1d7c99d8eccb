package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GeneralNumber string     `gorm:"size:100;not null;uniqueIndex"`
	NameAr        string     `gorm:"size:255;not null"`
	NameEn        string     `gorm:"size:255"`
	BirthDate     string     `gorm:"size:10"`
	NationalID    string     `gorm:"size:100"`
	IDIssueDate   string     `gorm:"size:10"`
	IDExpiryDate  string     `gorm:"size:10"`
	DepartmentID  *uuid.UUID `gorm:"type:uuid;index"`
	JobTitleID    *uuid.UUID `gorm:"type:uuid;index"`
	Phone         string     `gorm:"size:50"`
	IBANNumber    string     `gorm:"size:100"`
	Role          string     `gorm:"size:100"`
	PhotoPath     string     `gorm:"size:500"`
	DocsPath      string     `gorm:"size:500"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Row is the list read model: an employee joined with its lookup names.
// Department and job title resolve through LEFT JOINs, so employees with
// dangling or missing lookups still show up.
type Row struct {
	Employee
	DepartmentName string `gorm:"column:department_name"`
	JobTitleName   string `gorm:"column:job_title_name"`
}

// VisaTypeLink ties an employee to the name of a visa type it holds,
// through its passports. Used by the list filter.
type VisaTypeLink struct {
	EmployeeID   uuid.UUID `gorm:"column:employee_id"`
	VisaTypeName string    `gorm:"column:visa_type_name"`
}
