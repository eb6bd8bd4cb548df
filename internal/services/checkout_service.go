package services

import (
	"context"
	"errors"
	"log"
	"time"

	"store-service/internal/domain"
	"store-service/internal/infra/rabbitmq"
	"store-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var (
	ErrEmptyOrder    = errors.New("order has no lines")
	ErrOrderNotFound = errors.New("order not found")
)

const (
	msgProductNotFound   = "product not found"
	msgInsufficientStock = "insufficient stock"
)

// Rejection is one user-visible reason a checkout line cannot be satisfied.
// Validation reports every failing line, not just the first.
type Rejection struct {
	ProductID uint   `json:"productId"`
	Message   string `json:"message"`
}

// Customer is the payload snapshotted onto the order at checkout.
type Customer struct {
	Name          string
	Phone         string
	Address       string
	PaymentMethod string
}

// CheckoutService is the single checkout path: both the bespoke checkout
// endpoint and order placement from a cart run through Checkout, so stock
// validation cannot be bypassed.
type CheckoutService struct {
	orders      repository.OrderRepository
	products    repository.ProductRepository
	carts       repository.CartRepository
	publisher   rabbitmq.PublisherInterface
	redisClient *redis.Client
}

func NewCheckoutService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	carts repository.CartRepository,
	publisher rabbitmq.PublisherInterface,
) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		products:  products,
		carts:     carts,
		publisher: publisher,
	}
}

func (s *CheckoutService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// ValidateStock checks every line against current stock and returns the full
// rejection list. Lines whose snapshot fields are unset are filled in from
// the stored product.
func (s *CheckoutService) ValidateStock(ctx context.Context, lines []domain.OrderLine) ([]Rejection, error) {
	var rejections []Rejection
	for i := range lines {
		line := &lines[i]
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			rejections = append(rejections, Rejection{ProductID: line.ProductID, Message: msgProductNotFound})
			continue
		}
		if product.Quantity < line.Quantity {
			rejections = append(rejections, Rejection{ProductID: line.ProductID, Message: msgInsufficientStock})
			continue
		}
		if line.Title == "" {
			line.Title = product.Title
		}
		if line.Image == "" {
			line.Image = product.Image
		}
		if line.Price == 0 {
			line.Price = product.Price
		}
	}
	return rejections, nil
}

// Checkout validates stock for all lines, then commits: one transaction
// decrements every product conditionally and inserts the order. A non-nil
// rejection list means nothing was mutated. A concurrent checkout can still
// drain stock between validation and commit; the conditional decrement
// catches that and surfaces it as a rejection, with all partial decrements
// rolled back.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint, lines []domain.OrderLine, customer Customer) (*domain.Order, []Rejection, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	rejections, err := s.ValidateStock(ctx, lines)
	if err != nil {
		return nil, nil, err
	}
	if len(rejections) > 0 {
		return nil, rejections, nil
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          customer.Name,
		Phone:         customer.Phone,
		Address:       customer.Address,
		PaymentMethod: customer.PaymentMethod,
		Lines:         lines,
		TotalPrice:    domain.Total(lines),
		PlacedAt:      time.Now(),
	}

	if err := s.orders.PlaceOrder(ctx, order); err != nil {
		var insufficient *repository.InsufficientStockError
		if errors.As(err, &insufficient) {
			return nil, []Rejection{{ProductID: insufficient.ProductID, Message: msgInsufficientStock}}, nil
		}
		return nil, nil, err
	}

	s.invalidateProducts(ctx, lines)
	go s.publishOrderPlacedEvent(context.Background(), order)

	return order, nil, nil
}

// PlaceOrderFromCart snapshots the user's cart into order lines and runs the
// shared Checkout path. The cart is deleted only after the order committed;
// any failure leaves it intact.
func (s *CheckoutService) PlaceOrderFromCart(ctx context.Context, userID uint, customer Customer) (*domain.Order, []Rejection, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if cart == nil {
		return nil, nil, ErrCartNotFound
	}
	if len(cart.Lines) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	lines := make([]domain.OrderLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID: l.ProductID,
			Title:     l.Title,
			Price:     l.Price,
			Image:     l.Image,
			Quantity:  l.Quantity,
		})
	}

	order, rejections, err := s.Checkout(ctx, userID, lines, customer)
	if err != nil || len(rejections) > 0 {
		return nil, rejections, err
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		// The order exists; a stale cart is recoverable, so report success.
		log.Printf("Failed to delete cart for user %d after order %s: %v", userID, order.ID, err)
	}

	return order, nil, nil
}

func (s *CheckoutService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *CheckoutService) ListOrdersByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

func (s *CheckoutService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *CheckoutService) invalidateProducts(ctx context.Context, lines []domain.OrderLine) {
	if s.redisClient == nil {
		return
	}
	for _, l := range lines {
		s.redisClient.Del(ctx, productCacheKey(l.ProductID))
	}
}

func (s *CheckoutService) publishOrderPlacedEvent(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := domain.OrderPlacedEvent{
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		PlacedAt:   order.PlacedAt,
	}
	if err := s.publisher.Publish(ctx, "order.placed", evt); err != nil {
		log.Printf("Failed to publish order.placed event: %v", err)
	}
}
