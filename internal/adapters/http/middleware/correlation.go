package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rafaelleal24/eshop/internal/core/logger"
)

const (
	CorrelationHeader = "X-Correlation-ID"
	correlationKey    = "correlation_id"
	maxCorrelationLen = 128
)

// Correlation reuses the caller's X-Correlation-ID or mints one, stores it on
// the request context for logging and echoes it on the response.
func Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationHeader)
		if id == "" || len(id) > maxCorrelationLen {
			id = uuid.NewString()
		}

		c.Set(correlationKey, id)
		c.Request = c.Request.WithContext(logger.WithCorrelationID(c.Request.Context(), id))
		c.Header(CorrelationHeader, id)

		c.Next()
	}
}

func CorrelationID(c *gin.Context) string {
	return c.GetString(correlationKey)
}
