package domain

import "time"

// Favorite is one user's membership in a product's set of interested users.
// The composite unique index makes duplicate likes impossible; an emptied
// set is simply the absence of rows.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID uint      `json:"productId" gorm:"uniqueIndex:idx_fav_product_user;not null"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_fav_product_user;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
