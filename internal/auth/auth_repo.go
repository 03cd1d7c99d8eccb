package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	Get(ctx context.Context) (*Operator, error)
	GetByUsername(ctx context.Context, username string) (*Operator, error)
	Save(ctx context.Context, op *Operator) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*Operator, error) {
	var op Operator
	err := r.db.WithContext(ctx).First(&op, "id = ?", OperatorRowID).Error
	return &op, err
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Operator, error) {
	var op Operator
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&op).Error
	return &op, err
}

func (r *repository) Save(ctx context.Context, op *Operator) error {
	op.ID = OperatorRowID
	return r.db.WithContext(ctx).Save(op).Error
}
