// Package respond maps service errors onto the API envelope shared by the
// storefront controllers.
package respond

import (
	"context"
	"errors"
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/middleware"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error writes err with the status its sentinel implies. fallback is the
// message shown for unexpected failures.
func Error(c *gin.Context, err error, fallback string) {
	status, message := classify(err, fallback)
	if status >= http.StatusInternalServerError {
		config.Logger.Error("❌ "+fallback,
			zap.String("route", c.FullPath()),
			zap.String("session_id", middleware.SessionID(c)),
			zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse(c, message))
}

func classify(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, models.ErrCartItemNotFound):
		return http.StatusNotFound, "Cart item not found"
	case errors.Is(err, models.ErrInvalidPriceBand),
		errors.Is(err, models.ErrInvalidSortKey),
		errors.Is(err, models.ErrInvalidReview),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrMissingSession),
		errors.Is(err, models.ErrEmptyMessage):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrSessionClosed):
		return http.StatusConflict, "Chat session closed"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Request timed out"
	default:
		return http.StatusInternalServerError, fallback
	}
}

// Session returns the shopper session id, writing a 400 when it is missing.
func Session(c *gin.Context) (string, bool) {
	id := middleware.SessionID(c)
	if id == "" {
		Error(c, models.ErrMissingSession, "Missing session")
		return "", false
	}
	return id, true
}
