package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListFavorites(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	products, err := h.favorites.ListFavorites(c.Request.Context(), claims.UserID())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) LikeProduct(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	if err := h.favorites.Like(c.Request.Context(), claims.UserID(), productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "favorite added"})
}

func (h *Handler) UnlikeProduct(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	if err := h.favorites.Unlike(c.Request.Context(), claims.UserID(), productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}
