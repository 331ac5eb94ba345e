package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/eshop/internal/adapters/config"
	"github.com/rafaelleal24/eshop/internal/adapters/http/controllers"
	"github.com/rafaelleal24/eshop/internal/adapters/http/middleware"
)

const shutdownTimeout = 2 * time.Second

type Router struct {
	healthController  *controllers.HealthController
	catalogController *controllers.CatalogController
	basketController  *controllers.BasketController
	orderController   *controllers.OrderController
	rateLimiter       middleware.RateLimiter
	orderLimit        config.RateLimitConfig
}

func NewRouter(
	healthController *controllers.HealthController,
	catalogController *controllers.CatalogController,
	basketController *controllers.BasketController,
	orderController *controllers.OrderController,
	rateLimiter middleware.RateLimiter,
	orderLimit config.RateLimitConfig,
) *Router {
	return &Router{
		healthController:  healthController,
		catalogController: catalogController,
		basketController:  basketController,
		orderController:   orderController,
		rateLimiter:       rateLimiter,
		orderLimit:        orderLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.Correlation(), middleware.LogRequest())
	{
		apiGroup.GET("/health", r.healthController.Health)

		apiGroup.GET("/catalog-items", r.catalogController.ListPaged)
		apiGroup.GET("/catalog-items/:id", r.catalogController.GetByID)
		apiGroup.POST("/catalog-items", r.catalogController.Create)
		apiGroup.DELETE("/catalog-items/:id", r.catalogController.Delete)
		apiGroup.GET("/catalog-brands", r.catalogController.ListBrands)
		apiGroup.GET("/catalog-types", r.catalogController.ListTypes)

		apiGroup.GET("/buyers/:buyerId/basket", r.basketController.GetBasket)
		apiGroup.POST("/buyers/:buyerId/basket/items", r.basketController.AddItem)
		apiGroup.POST("/buyers/:buyerId/basket/transfer", r.basketController.Transfer)
		apiGroup.PUT("/baskets/:id/quantities", r.basketController.SetQuantities)
		apiGroup.DELETE("/baskets/:id", r.basketController.Delete)

		apiGroup.POST("/orders", middleware.RateLimit(r.rateLimiter, r.orderLimit.Limit, r.orderLimit.Window), r.orderController.CreateOrder)
		apiGroup.GET("/orders/:id", r.orderController.GetOrderByID)
		apiGroup.GET("/buyers/:buyerId/orders", r.orderController.ListForBuyer)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
