package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/eshop/internal/adapters/config"
	"github.com/rafaelleal24/eshop/internal/adapters/http"
	"github.com/rafaelleal24/eshop/internal/adapters/http/controllers"
	"github.com/rafaelleal24/eshop/internal/adapters/mongo"
	"github.com/rafaelleal24/eshop/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/eshop/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/eshop/internal/adapters/redis"
	"github.com/rafaelleal24/eshop/internal/adapters/uri"
	"github.com/rafaelleal24/eshop/internal/core/domain"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"github.com/rafaelleal24/eshop/internal/core/service"
)

// @title       eShop API
// @version     1.0
// @description Catalog, basket and order checkout API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// initialize database connection
	mongoClient, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(mongoClient)
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// the sender dials per publish, the first health check tells us if the broker is reachable
	sender := rabbitmq.NewQueueSender(cfg.Messaging)
	if err := sender.HealthCheck(ctx); err != nil {
		logger.Warn(ctx, "RabbitMQ not reachable at startup", map[string]any{"error": err.Error()})
	}

	// database and repos
	database := mongoClient.Database(cfg.Mongo.Database)
	if cfg.Catalog.SeedOnStart {
		if err := mongo.SeedCatalog(ctx, database); err != nil {
			logger.Fatal(ctx, "Failed to seed catalog", err, nil)
		}
	}
	sequence := repository.NewSequence(database)
	catalogItemRepository := repository.NewCatalogItemRepository(database, sequence)
	catalogBrandRepository := repository.NewCatalogBrandRepository(database)
	catalogTypeRepository := repository.NewCatalogTypeRepository(database)
	basketRepository := repository.NewBasketRepository(database, sequence)
	orderRepository := repository.NewOrderRepository(database, sequence)
	txManager := mongo.NewTransactionManager(mongoClient)

	// caches and rate limiter
	orderCache := redis.NewCache[domain.Order](redisClient, "order")
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[domain.Order]](redisClient, "idempotency")
	rateLimiter := redis.NewRateLimiter(redisClient)

	uriComposer := uri.NewComposer(cfg.Catalog)

	// services
	catalogService := service.NewCatalogService(catalogItemRepository, catalogBrandRepository, catalogTypeRepository, uriComposer)
	basketService := service.NewBasketService(basketRepository, catalogItemRepository, txManager)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, cfg.Idempotency.TTL, cfg.Idempotency.PollInterval, cfg.Idempotency.PollTimeout)
	orderService := service.NewOrderService(basketRepository, catalogItemRepository, orderRepository, uriComposer, sender, orderCache, idempotencyService)

	// controllers
	catalogController := controllers.NewCatalogController(catalogService)
	basketController := controllers.NewBasketController(basketService)
	orderController := controllers.NewOrderController(orderService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: mongo.HealthCheck(mongoClient)},
		{Name: "redis", Check: redisClient.Ping},
		{Name: "rabbitmq", Check: sender.HealthCheck},
	})

	router := http.NewRouter(healthController, catalogController, basketController, orderController, rateLimiter, cfg.HTTP.OrderLimit)

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
	logger.Info(ctx, "HTTP server stopped", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintln(os.Stderr, "logger shutdown error: "+err.Error())
	}
}
