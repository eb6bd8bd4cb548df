package http

import (
	"errors"
	"net/http"

	"store-service/internal/auth"
	"store-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog   *services.CatalogService
	carts     *services.CartService
	checkout  *services.CheckoutService
	users     *services.UserService
	favorites *services.FavoriteService
	tokens    *auth.TokenMaker
}

func NewHandler(
	catalog *services.CatalogService,
	carts *services.CartService,
	checkout *services.CheckoutService,
	users *services.UserService,
	favorites *services.FavoriteService,
	tokens *auth.TokenMaker,
) *Handler {
	return &Handler{
		catalog:   catalog,
		carts:     carts,
		checkout:  checkout,
		users:     users,
		favorites: favorites,
		tokens:    tokens,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/signin", h.SignIn)
	r.POST("/register", h.Register)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/categories", h.ListCategories)

	authed := r.Group("", h.Authenticate())
	{
		authed.GET("/carts/me", h.GetCart)
		authed.DELETE("/carts/me", h.RemoveCart)
		authed.POST("/carts/items", h.AddToCart)
		authed.PATCH("/carts/items/:productId", h.UpdateCartLine)
		authed.DELETE("/carts/items/:productId", h.RemoveCartLine)

		authed.POST("/checkout", h.Checkout)
		authed.POST("/olders", h.PlaceOrder)
		authed.GET("/olders/me", h.ListMyOrders)

		authed.GET("/favorites", h.ListFavorites)
		authed.POST("/favorites/:productId", h.LikeProduct)
		authed.DELETE("/favorites/:productId", h.UnlikeProduct)

		authed.PATCH("/users/:id/password", h.ChangePassword)
	}

	admin := authed.Group("", h.RequireAdmin())
	{
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.POST("/categories", h.CreateCategory)
		admin.PATCH("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/olders", h.ListAllOrders)
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/users/:id", h.UpdateUserRole)
		admin.DELETE("/users/:id", h.DeleteUser)
	}
}

// respondError maps service sentinels onto HTTP statuses; anything unknown
// is a generic 500 so store errors never leak wire details.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
