package lookup

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=lookup_repo.go -destination=mock/lookup_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, kind Kind, value *Value) error
	FindAll(ctx context.Context, kind Kind) ([]Value, error)
	FindByID(ctx context.Context, kind Kind, id string) (*Value, error)
	FindByName(ctx context.Context, kind Kind, name string) (*Value, error)
	Update(ctx context.Context, kind Kind, value *Value) error
	Delete(ctx context.Context, kind Kind, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, kind Kind, value *Value) error {
	return r.db.WithContext(ctx).Table(kind.Table()).Create(value).Error
}

func (r *repository) FindAll(ctx context.Context, kind Kind) ([]Value, error) {
	var values []Value
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Order("name ASC").
		Find(&values).Error
	return values, err
}

func (r *repository) FindByID(ctx context.Context, kind Kind, id string) (*Value, error) {
	var value Value
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		First(&value, "id = ?", id).Error
	return &value, err
}

func (r *repository) FindByName(ctx context.Context, kind Kind, name string) (*Value, error) {
	var value Value
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		First(&value, "name = ?", strings.TrimSpace(name)).Error
	return &value, err
}

func (r *repository) Update(ctx context.Context, kind Kind, value *Value) error {
	return r.db.WithContext(ctx).
		Table(kind.Table()).
		Where("id = ?", value.ID).
		Updates(map[string]any{"name": value.Name}).Error
}

func (r *repository) Delete(ctx context.Context, kind Kind, id string) error {
	return r.db.WithContext(ctx).
		Table(kind.Table()).
		Where("id = ?", id).
		Delete(&Value{}).Error
}
