package domain

import "time"

// Cart is the per-user working set of selected product lines. UserID carries
// a unique index so the store itself enforces one cart per user.
type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint       `json:"userId" gorm:"uniqueIndex;not null"`
	Lines     []CartLine `json:"products" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// CartLine snapshots title, price and image at add-to-cart time so the cart
// renders without a product join.
type CartLine struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	CartID    uint    `json:"-" gorm:"index;not null"`
	ProductID uint    `json:"productId" gorm:"not null"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" gorm:"not null"`
}

// Line returns the cart line for productID, or nil.
func (c *Cart) Line(productID uint) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}
