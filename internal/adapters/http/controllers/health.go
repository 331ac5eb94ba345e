package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"golang.org/x/sync/errgroup"
)

const (
	healthCheckTimeout  = 3 * time.Second
	maxConcurrentChecks = 4
)

type HealthResponse struct {
	Status   string            `json:"status" example:"ok"`
	Services map[string]string `json:"services" example:"mongodb:ok,redis:ok,rabbitmq:unavailable"`
}

type HealthChecker struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthController struct {
	checkers []HealthChecker
}

func NewHealthController(checkers []HealthChecker) *HealthController {
	return &HealthController{checkers: checkers}
}

// Health godoc
// @Summary     Health check
// @Description Checks the health of all dependent services
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     503 {object} HealthResponse
// @Router      /api/health [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	results := make([]error, len(h.checkers))

	// A failing check is recorded, not returned, so the others keep running.
	var g errgroup.Group
	g.SetLimit(maxConcurrentChecks)
	for i, checker := range h.checkers {
		g.Go(func() error {
			results[i] = checker.Check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	status, code := "ok", http.StatusOK
	services := make(map[string]string, len(h.checkers))
	for i, checker := range h.checkers {
		if err := results[i]; err != nil {
			logger.Error(c.Request.Context(), "health check failed", err, map[string]any{
				"service": checker.Name,
			})
			services[checker.Name] = "unavailable"
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		services[checker.Name] = "ok"
	}

	c.JSON(code, HealthResponse{
		Status:   status,
		Services: services,
	})
}
