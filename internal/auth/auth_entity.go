package auth

import "time"

// OperatorRowID pins the single operator account to one row. The tool is
// single-operator: there is exactly one credential pair guarding the API.
const OperatorRowID = 1

type Operator struct {
	ID        int       `gorm:"primaryKey"`
	Username  string    `gorm:"size:255;not null;uniqueIndex"`
	Password  string    `gorm:"size:255;not null"`
	Role      string    `gorm:"size:50;not null;default:'admin'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Operator) TableName() string {
	return "operators"
}
