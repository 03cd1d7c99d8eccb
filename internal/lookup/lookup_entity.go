package lookup

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies one of the four lookup tables. It is a closed set: any
// value that did not come out of ParseKind is rejected.
type Kind string

const (
	KindDepartment   Kind = "department_types"
	KindJobTitle     Kind = "job_titles"
	KindPassportType Kind = "passport_types"
	KindVisaType     Kind = "visa_types"
)

var kinds = map[Kind]bool{
	KindDepartment:   true,
	KindJobTitle:     true,
	KindPassportType: true,
	KindVisaType:     true,
}

// ParseKind validates a kind name from the outside world.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	return k, kinds[k]
}

// Kinds returns every registered kind, for migration and seeding.
func Kinds() []Kind {
	return []Kind{KindDepartment, KindJobTitle, KindPassportType, KindVisaType}
}

// Table returns the backing table name.
func (k Kind) Table() string {
	return string(k)
}

// Value is a single (id, name) lookup row. All four kinds share this shape.
type Value struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
