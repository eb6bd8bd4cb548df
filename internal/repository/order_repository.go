package repository

import (
	"context"
	"fmt"

	"store-service/internal/domain"
)

// InsufficientStockError reports the product whose conditional stock
// decrement matched no row during order placement.
type InsufficientStockError struct {
	ProductID uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}

type OrderRepository interface {
	// PlaceOrder decrements stock for every order line and inserts the order
	// in one transaction. Each decrement is conditional
	// (quantity = quantity - n WHERE quantity >= n); if any line cannot be
	// satisfied the whole transaction rolls back and an
	// *InsufficientStockError is returned.
	PlaceOrder(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}
