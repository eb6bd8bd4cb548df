package repository

import (
	"context"

	"store-service/internal/domain"
)

// ProductFilter narrows catalog listings. Hidden-category products are
// excluded unless IncludeHidden is set.
type ProductFilter struct {
	Search        string
	CategoryID    uint
	IncludeHidden bool
}

type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
}
