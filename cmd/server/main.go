package main

import (
	"context"
	"log"
	"os"
	"time"

	"store-service/internal/auth"
	httpcontroller "store-service/internal/controllers/http"
	mmysql "store-service/internal/infra/mysql"
	"store-service/internal/infra/rabbitmq"
	"store-service/internal/infra/seed"
	"store-service/internal/repository"
	mysqlrepo "store-service/internal/repository/mysql"
	"store-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if path := os.Getenv("SEED_FILE"); path != "" {
		if err := seed.Load(db, path); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	productRepo := mysqlrepo.NewProductRepository(db)
	categoryRepo := mysqlrepo.NewCategoryRepository(db)
	cartRepo := mysqlrepo.NewCartRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)
	favoriteRepo := mysqlrepo.NewFavoriteRepository(db)

	var publisher rabbitmq.PublisherInterface
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		p, err := rabbitmq.NewPublisher(url, "store.exchange")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens := auth.NewTokenMaker(secret, 24*time.Hour)

	catalog := services.NewCatalogService(productRepo, categoryRepo)
	carts := services.NewCartService(cartRepo, productRepo)
	checkout := services.NewCheckoutService(orderRepo, productRepo, cartRepo, publisher)
	users := services.NewUserService(userRepo, tokens)
	favorites := services.NewFavoriteService(favoriteRepo, productRepo)

	if host := os.Getenv("REDIS_HOST"); host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         host + ":6379",
			DB:           0,
			PoolSize:     50,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		catalog.SetRedisClient(redisClient)
		checkout.SetRedisClient(redisClient)

		go func() {
			time.Sleep(5 * time.Second)
			warmupCatalogCache(catalog, productRepo)
		}()
	}

	handler := httpcontroller.NewHandler(catalog, carts, checkout, users, favorites, tokens)

	if os.Getenv("GIN_MODE") == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting store service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}

// warmupCatalogCache pre-loads the product cache with the current catalog so
// the first page of traffic after a restart does not stampede the database.
func warmupCatalogCache(catalog *services.CatalogService, products repository.ProductRepository) {
	ctx := context.Background()
	all, err := products.FindAll(ctx, repository.ProductFilter{IncludeHidden: true})
	if err != nil {
		log.Printf("Failed to list products for cache warmup: %v", err)
		return
	}
	ids := make([]uint, 0, len(all))
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	if err := catalog.WarmupProductCache(ctx, ids); err != nil {
		log.Printf("Failed to warm up cache: %v", err)
	} else {
		log.Println("Cache warmed up successfully")
	}
}
