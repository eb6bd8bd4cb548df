package repository

import (
	"context"

	"store-service/internal/domain"
)

type CategoryRepository interface {
	Save(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*domain.Category, error)
	FindAll(ctx context.Context, includeHidden bool) ([]domain.Category, error)
}
