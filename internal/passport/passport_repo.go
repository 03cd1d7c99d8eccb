package passport

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=passport_repo.go -destination=mock/passport_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Passport) error
	FindAll(ctx context.Context) ([]Row, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Row, error)
	FindByID(ctx context.Context, id string) (*Row, error)
	FindByNumber(ctx context.Context, passportNumber string) (*Passport, error)
	Update(ctx context.Context, p *Passport) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const rowSelect = `
	passports.*,
	COALESCE(pt.name, '') AS passport_type_name,
	COALESCE(e.name_ar, '') AS employee_name_ar,
	COALESCE(e.general_number, '') AS general_number
`

func (r *repository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("passports").
		Select(rowSelect).
		Joins("LEFT JOIN passport_types pt ON pt.id = passports.passport_type_id").
		Joins("LEFT JOIN employees e ON e.id = passports.employee_id")
}

func (r *repository) Create(ctx context.Context, p *Passport) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Row, error) {
	var rows []Row
	err := r.rowQuery(ctx).
		Order("passports.passport_number ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Row, error) {
	var rows []Row
	err := r.rowQuery(ctx).
		Where("passports.employee_id = ?", employeeID).
		Order("passports.passport_number ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Row, error) {
	var row Row
	res := r.rowQuery(ctx).
		Where("passports.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) FindByNumber(ctx context.Context, passportNumber string) (*Passport, error) {
	var p Passport
	err := r.db.WithContext(ctx).
		First(&p, "passport_number = ?", passportNumber).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Passport) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes a passport and its visas in one transaction. Handover
// rows are kept: they are the audit trail and outlive the passport.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM visas WHERE passport_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Passport{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
