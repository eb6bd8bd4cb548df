package mysql

import (
	"context"

	"store-service/internal/domain"
	"store-service/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type favoriteRepo struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) Add(ctx context.Context, productID, userID uint) error {
	fav := domain.Favorite{ProductID: productID, UserID: userID}
	// Duplicate likes hit the unique (product, user) index and are ignored.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
}

func (r *favoriteRepo) Remove(ctx context.Context, productID, userID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Delete(&domain.Favorite{}).Error
}

func (r *favoriteRepo) FindByUserID(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *favoriteRepo) Exists(ctx context.Context, productID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("product_id = ? AND user_id = ?", productID, userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
