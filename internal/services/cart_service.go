package services

import (
	"context"
	"errors"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// CartService maintains at most one cart per user. The merge semantics live
// here; every repository mutation runs in its own locked transaction so
// concurrent updates cannot lose each other's lines.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddToCart creates the user's cart on first use, then merges: an existing
// line for the same product gains quantity, anything else is appended as a
// new snapshot line.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	line := domain.CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	}
	return s.carts.MergeLine(ctx, userID, line)
}

// UpdateLineQuantity sets a line's quantity. Zero removes the line; a cart
// whose last line is removed remains as an empty cart.
func (s *CartService) UpdateLineQuantity(ctx context.Context, userID, productID uint, quantity int) (*domain.Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveLine(ctx, userID, productID)
	}

	cart, err := s.carts.SetLineQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

func (s *CartService) RemoveLine(ctx context.Context, userID, productID uint) (*domain.Cart, error) {
	cart, err := s.carts.RemoveLine(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// RemoveCart deletes the whole cart document, in contrast to emptying it
// line by line.
func (s *CartService) RemoveCart(ctx context.Context, userID uint) error {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return ErrCartNotFound
	}
	return s.carts.Delete(ctx, userID)
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}
