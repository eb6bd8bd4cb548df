package repository

import (
	"context"

	"store-service/internal/domain"
)

// CartRepository mutates carts inside single transactions with the cart row
// locked, so two concurrent writers to the same cart cannot lose an update.
// Lookup methods return (nil, nil) when the user has no cart.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*domain.Cart, error)
	// MergeLine creates the user's cart if absent, then either increases the
	// quantity of an existing line for the same product or appends the line.
	MergeLine(ctx context.Context, userID uint, line domain.CartLine) (*domain.Cart, error)
	// SetLineQuantity replaces a line's stored quantity. A missing line is a
	// no-op; callers remove lines via RemoveLine.
	SetLineQuantity(ctx context.Context, userID, productID uint, quantity int) (*domain.Cart, error)
	// RemoveLine filters the line out. Removing the last line leaves an
	// existing, empty cart.
	RemoveLine(ctx context.Context, userID, productID uint) (*domain.Cart, error)
	Delete(ctx context.Context, userID uint) error
}
