package repository

import (
	"context"

	"store-service/internal/domain"
)

type FavoriteRepository interface {
	// Add records the membership; adding an existing membership is a no-op.
	Add(ctx context.Context, productID, userID uint) error
	Remove(ctx context.Context, productID, userID uint) error
	FindByUserID(ctx context.Context, userID uint) ([]domain.Favorite, error)
	Exists(ctx context.Context, productID, userID uint) (bool, error)
}
