package middleware

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/eshop/internal/core/logger"
)

func logHTTPRequest(ctx context.Context, method, path, route string, statusCode int, duration time.Duration, extraAttributes map[string]any) {
	attrs := map[string]any{
		"http.method":      method,
		"http.path":        path,
		"http.route":       route,
		"http.status_code": statusCode,
		"http.duration_ms": duration.Milliseconds(),
	}

	for key, value := range extraAttributes {
		attrs[key] = value
	}

	level := logger.LogLevelInfo
	if statusCode >= 500 {
		level = logger.LogLevelError
	} else if statusCode >= 400 {
		level = logger.LogLevelWarn
	}

	logger.Log(ctx, logger.LogEntry{
		Level:      level,
		Message:    "HTTP Request",
		Attributes: attrs,
	})
}

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

const maxLoggedBodySize = 16 * 1024

// errorBodyWriter keeps a bounded copy of the response so failed requests
// can log what the client saw.
type errorBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *errorBodyWriter) Write(b []byte) (int, error) {
	if w.body.Len()+len(b) <= maxLoggedBodySize {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorBodyWriter) WriteString(s string) (int, error) {
	if w.body.Len()+len(s) <= maxLoggedBodySize {
		w.body.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

// LogRequest logs one line per request. Response bodies are only attached
// for 4xx and 5xx answers.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		buf := bufferPool.Get().(*bytes.Buffer)
		defer bufferPool.Put(buf)
		buf.Reset()

		writer := &errorBodyWriter{ResponseWriter: c.Writer, body: buf}
		c.Writer = writer

		c.Next()

		extraAttributes := map[string]any{}

		if contentLength := c.Request.Header.Get("Content-Length"); contentLength != "" {
			if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil {
				extraAttributes["http.request_size"] = size
			}
		}
		extraAttributes["http.response_size"] = c.Writer.Size()

		status := c.Writer.Status()
		contentType := c.Writer.Header().Get("Content-Type")
		if status >= 400 && strings.Contains(contentType, "application/json") && writer.body.Len() > 0 {
			extraAttributes["http.response_body"] = writer.body.String()
		}

		logHTTPRequest(
			c.Request.Context(),
			c.Request.Method,
			c.Request.URL.Path,
			c.FullPath(),
			status,
			time.Since(start),
			extraAttributes,
		)
	}
}
