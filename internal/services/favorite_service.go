package services

import (
	"context"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

// FavoriteService tracks which users are interested in which products. A
// product's favorite set is the set of membership rows; liking twice is a
// no-op and unliking the last member simply leaves no rows.
type FavoriteService struct {
	favorites repository.FavoriteRepository
	products  repository.ProductRepository
}

func NewFavoriteService(favorites repository.FavoriteRepository, products repository.ProductRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, products: products}
}

func (s *FavoriteService) Like(ctx context.Context, userID, productID uint) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.favorites.Add(ctx, productID, userID)
}

func (s *FavoriteService) Unlike(ctx context.Context, userID, productID uint) error {
	return s.favorites.Remove(ctx, productID, userID)
}

func (s *FavoriteService) IsLiked(ctx context.Context, userID, productID uint) (bool, error) {
	return s.favorites.Exists(ctx, productID, userID)
}

// ListFavorites resolves the user's memberships to products. Favorites whose
// product has since been deleted are skipped.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint) ([]domain.Product, error) {
	favorites, err := s.favorites.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(favorites))
	for _, fav := range favorites {
		product, err := s.products.FindByID(ctx, fav.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			out = append(out, *product)
		}
	}
	return out, nil
}
