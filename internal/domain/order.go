package domain

import "time"

// Order is an immutable point-in-time snapshot of purchased lines plus the
// customer payload. It is created once at checkout and never mutated.
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;size:36"`
	UserID        uint        `json:"userId" gorm:"index;not null"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	TotalPrice    float64     `json:"totalPrice" gorm:"not null"`
	Lines         []OrderLine `json:"products" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PlacedAt      time.Time   `json:"olderTime"`
}

type OrderLine struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string  `json:"-" gorm:"index;size:36;not null"`
	ProductID uint    `json:"productId" gorm:"not null"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" gorm:"not null"`
}

// Total computes the order total over a set of lines.
func Total(lines []OrderLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}
