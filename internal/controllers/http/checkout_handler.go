package http

import (
	"net/http"

	"store-service/internal/domain"
	"store-service/internal/services"

	"github.com/gin-gonic/gin"
)

// Checkout is the bespoke endpoint: the client submits its own line items.
// A rejection answers 400 with every failing line, and nothing is mutated.
func (h *Handler) Checkout(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, domain.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, rejections, err := h.checkout.Checkout(c.Request.Context(), claims.UserID(), lines, customerFrom(req.Customer))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(rejections) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "some products cannot be purchased",
			"details": rejections,
		})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// PlaceOrder converts the caller's cart into an order. It shares the
// checkout stock validation; the cart survives any failure.
func (h *Handler) PlaceOrder(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CustomerInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, rejections, err := h.checkout.PlaceOrderFromCart(c.Request.Context(), claims.UserID(), customerFrom(req))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(rejections) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "some products cannot be purchased",
			"details": rejections,
		})
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := h.checkout.ListOrdersByUser(c.Request.Context(), claims.UserID())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ListAllOrders(c *gin.Context) {
	orders, err := h.checkout.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func customerFrom(info CustomerInfo) services.Customer {
	return services.Customer{
		Name:          info.Name,
		Phone:         info.Phone,
		Address:       info.Address,
		PaymentMethod: info.PaymentMethod,
	}
}
