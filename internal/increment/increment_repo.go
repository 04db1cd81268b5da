package increment

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=increment_repo.go -destination=mock/increment_repo_mock.go -package=mock
type Repository interface {
	ListScheme(ctx context.Context) ([]IncrementScheme, error)
	ListSchemeOrdered(ctx context.Context) ([]IncrementScheme, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListScheme(ctx context.Context) ([]IncrementScheme, error) {
	var rows []IncrementScheme
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *repository) ListSchemeOrdered(ctx context.Context) ([]IncrementScheme, error) {
	var rows []IncrementScheme
	err := r.db.WithContext(ctx).
		Order("rating DESC").
		Find(&rows).Error
	return rows, err
}
