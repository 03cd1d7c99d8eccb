package visa

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=visa_repo.go -destination=mock/visa_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, v *Visa) error
	FindAll(ctx context.Context) ([]Row, error)
	FindAllByPassport(ctx context.Context, passportID string) ([]Row, error)
	FindByID(ctx context.Context, id string) (*Row, error)
	FindByNumber(ctx context.Context, visaNumber string) (*Visa, error)
	Update(ctx context.Context, v *Visa) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const rowSelect = `
	visas.*,
	COALESCE(vt.name, '') AS visa_type_name,
	COALESCE(p.passport_number, '') AS passport_number,
	COALESCE(e.name_ar, '') AS employee_name_ar
`

func (r *repository) rowQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("visas").
		Select(rowSelect).
		Joins("LEFT JOIN visa_types vt ON vt.id = visas.visa_type_id").
		Joins("LEFT JOIN passports p ON p.id = visas.passport_id").
		Joins("LEFT JOIN employees e ON e.id = p.employee_id")
}

func (r *repository) Create(ctx context.Context, v *Visa) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Row, error) {
	var rows []Row
	err := r.rowQuery(ctx).
		Order("visas.visa_number ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindAllByPassport(ctx context.Context, passportID string) ([]Row, error) {
	var rows []Row
	err := r.rowQuery(ctx).
		Where("visas.passport_id = ?", passportID).
		Order("visas.visa_number ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Row, error) {
	var row Row
	res := r.rowQuery(ctx).
		Where("visas.id = ?", id).
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

func (r *repository) FindByNumber(ctx context.Context, visaNumber string) (*Visa, error) {
	var v Visa
	err := r.db.WithContext(ctx).
		First(&v, "visa_number = ?", visaNumber).Error
	return &v, err
}

func (r *repository) Update(ctx context.Context, v *Visa) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Visa{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
