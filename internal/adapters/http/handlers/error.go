package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/eshop/internal/core/logger"
	"github.com/rafaelleal24/eshop/internal/core/serviceerrors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func HandleError(c *gin.Context, err error) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(mapKindToHTTP(svcErr.Kind), ErrorResponse{Error: svcErr.Message})
		return
	}

	logger.Error(c.Request.Context(), "unhandled error", err, map[string]any{
		"http.path": c.Request.URL.Path,
	})
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity, serviceerrors.KindInvalidOperation:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	case serviceerrors.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
