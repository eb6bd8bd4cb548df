package mysql

import (
	"context"
	"errors"
	"log"

	"store-service/internal/domain"
	"store-service/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// PlaceOrder runs the stock decrements and the order insert as one
// transaction. Every decrement is conditional on sufficient stock; a miss
// rolls back everything, so no partial decrement ever survives.
func (r *orderRepo) PlaceOrder(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, l := range order.Lines {
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND quantity >= ?", l.ProductID, l.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", l.Quantity))
			if res.Error != nil {
				log.Printf("stock decrement error for product %d: %v", l.ProductID, res.Error)
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &repository.InsufficientStockError{ProductID: l.ProductID}
			}
		}
		return tx.Create(order).Error
	})
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("Lines").First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("user_id = ?", userID).Order("placed_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).Preload("Lines").Order("placed_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
