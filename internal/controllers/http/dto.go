package http

import "store-service/internal/domain"

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignInResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type AddCartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// Quantity is a pointer because zero is a meaningful value here: it removes
// the line.
type UpdateCartLineRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

type CheckoutItem struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"gte=0"`
}

type CustomerInfo struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type CheckoutRequest struct {
	Items    []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	Customer CustomerInfo   `json:"customer" binding:"required"`
}

type ProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity" binding:"required,gte=0"`
	CategoryID  uint     `json:"categoryId"`
}

type CategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	IsHidden bool   `json:"isHidden"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	IsHidden *bool   `json:"isHidden"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}
