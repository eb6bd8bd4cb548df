package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"store-service/internal/domain"
	"store-service/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

const productCacheTTL = time.Minute

// CatalogService serves read queries over products and categories and the
// admin CRUD behind them. Single-product reads go through a Redis
// cache; every product write invalidates the cached entry.
type CatalogService struct {
	products    repository.ProductRepository
	categories  repository.CategoryRepository
	redisClient *redis.Client
}

func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
	}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	return s.products.FindAll(ctx, filter)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	cacheKey := productCacheKey(id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var prod domain.Product
			if err := json.Unmarshal([]byte(cached), &prod); err == nil {
				return &prod, nil
			}
		}
	}

	prod, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, ErrProductNotFound
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(prod); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return prod, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if product.Price < 0 {
		return errors.New("price must not be negative")
	}
	if product.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}
	return s.products.Save(ctx, product)
}

// UpdateProduct copies the submitted fields onto the stored row before
// saving, so CreatedAt and anything else the caller does not own survive
// the full-row write.
func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Price < 0 {
		return nil, errors.New("price must not be negative")
	}
	if product.Quantity < 0 {
		return nil, errors.New("quantity must not be negative")
	}

	existing, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	existing.Title = product.Title
	existing.Price = product.Price
	existing.Image = product.Image
	existing.Description = product.Description
	existing.Quantity = product.Quantity
	existing.CategoryID = product.CategoryID
	if err := s.products.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.invalidateProduct(ctx, existing.ID)
	return existing, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateProduct(ctx, id)
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context, includeHidden bool) ([]domain.Category, error) {
	return s.categories.FindAll(ctx, includeHidden)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	return s.categories.Save(ctx, category)
}

// UpdateCategory patches the mutable category fields. Hiding a category
// drops its products out of public listings without removing them from the
// store.
func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, name *string, hidden *bool) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	if name != nil {
		category.Name = *name
	}
	if hidden != nil {
		category.IsHidden = *hidden
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categories.Delete(ctx, id)
}

// WarmupProductCache pre-populates the Redis cache for a set of products,
// fetching them concurrently.
func (s *CatalogService) WarmupProductCache(ctx context.Context, productIDs []uint) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range productIDs {
		id := id
		g.Go(func() error {
			prod, err := s.products.FindByID(ctx, id)
			if err != nil {
				log.Printf("Failed to warm up cache for product %d: %v", id, err)
				return nil
			}
			if prod != nil {
				if data, err := json.Marshal(prod); err == nil {
					s.redisClient.Set(ctx, productCacheKey(id), data, 5*time.Minute)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *CatalogService) invalidateProduct(ctx context.Context, id uint) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, productCacheKey(id))
	}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
