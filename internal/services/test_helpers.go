package services

import (
	"time"

	"store-service/internal/auth"
	"store-service/internal/domain"
)

func CreateTestProduct(id uint, title string, price float64, quantity int) *domain.Product {
	return &domain.Product{
		ID:          id,
		Title:       title,
		Price:       price,
		Image:       "http://img.test/" + title + ".png",
		Description: "test product",
		Quantity:    quantity,
		CategoryID:  1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func CreateTestCart(id, userID uint, lines ...domain.CartLine) *domain.Cart {
	return &domain.Cart{
		ID:     id,
		UserID: userID,
		Lines:  lines,
	}
}

func CreateTestLine(productID uint, price float64, quantity int) domain.CartLine {
	return domain.CartLine{
		ProductID: productID,
		Title:     "line",
		Price:     price,
		Image:     "http://img.test/line.png",
		Quantity:  quantity,
	}
}

func CreateTestUser(id uint, email, password string, role domain.Role) *domain.User {
	hash, _ := auth.HashPassword(password)
	return &domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		RegisterAt:   time.Now(),
	}
}

const (
	TestUserID    = uint(7)
	TestProductID = uint(1)
	TestEmail     = "a@x.com"
	TestPassword  = "secret123"
)
