package domain

import "time"

type OrderPlacedEvent struct {
	OrderID    string    `json:"orderId"`
	UserID     uint      `json:"userId"`
	TotalPrice float64   `json:"totalPrice"`
	PlacedAt   time.Time `json:"placedAt"`
}
