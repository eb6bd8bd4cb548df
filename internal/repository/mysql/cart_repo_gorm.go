package mysql

import (
	"context"
	"errors"

	"store-service/internal/domain"
	"store-service/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByUserID(ctx context.Context, userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).Preload("Lines").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) MergeLine(ctx context.Context, userID uint, line domain.CartLine) (*domain.Cart, error) {
	var out *domain.Cart
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := lockCart(tx, userID)
		if err != nil {
			return err
		}
		if cart == nil {
			cart = &domain.Cart{UserID: userID}
			if err := tx.Create(cart).Error; err != nil {
				return err
			}
		}

		var existing domain.CartLine
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, line.ProductID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			line.CartID = cart.ID
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			err := tx.Model(&existing).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", line.Quantity)).Error
			if err != nil {
				return err
			}
		}

		out, err = reloadCart(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) SetLineQuantity(ctx context.Context, userID, productID uint, quantity int) (*domain.Cart, error) {
	var out *domain.Cart
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := lockCart(tx, userID)
		if err != nil || cart == nil {
			return err
		}
		err = tx.Model(&domain.CartLine{}).
			Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			UpdateColumn("quantity", quantity).Error
		if err != nil {
			return err
		}
		out, err = reloadCart(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) RemoveLine(ctx context.Context, userID, productID uint) (*domain.Cart, error) {
	var out *domain.Cart
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := lockCart(tx, userID)
		if err != nil || cart == nil {
			return err
		}
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Delete(&domain.CartLine{}).Error
		if err != nil {
			return err
		}
		out, err = reloadCart(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) Delete(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := lockCart(tx, userID)
		if err != nil || cart == nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&domain.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(cart).Error
	})
}

// lockCart takes a row lock on the user's cart for the duration of the
// transaction, serializing concurrent writers to the same cart.
func lockCart(tx *gorm.DB, userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func reloadCart(tx *gorm.DB, cartID uint) (*domain.Cart, error) {
	var cart domain.Cart
	if err := tx.Preload("Lines").First(&cart, cartID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}
