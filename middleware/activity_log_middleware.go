package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL segments to the resource a shopper mutates.
var pathToResourceType = map[string]string{
	"cart":     "cart_item",
	"wishlist": "wishlist_item",
	"reviews":  "review",
	"chat":     "chat",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	http.MethodPost:   "created",
	http.MethodPatch:  "updated",
	http.MethodPut:    "updated",
	http.MethodDelete: "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLogger writes one structured entry per storefront mutation
// ("created_cart_item", "deleted_wishlist_item", ...). Reads pass through
// unlogged. Register it after SessionIdentity.
func ActivityLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		verb, mutating := methodToActionVerb[c.Request.Method]
		if !mutating {
			c.Next()
			return
		}

		resourceType := extractResourceType(c.FullPath())
		if resourceType == "" {
			c.Next()
			return
		}
		action := verb + "_" + resourceType

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("action", action),
			zap.String("session_id", SessionID(c)),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		if id := c.Param("id"); id != "" {
			fields = append(fields, zap.String("resource_id", id))
		}

		if status >= 200 && status < 300 {
			logger.Info("✅ Storefront activity", fields...)
			return
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}
		logger.Warn("⚠️ Storefront activity failed", fields...)
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType finds the last known resource segment of a route,
// e.g. "/api/v1/products/:id/reviews" → "review".
func extractResourceType(route string) string {
	parts := strings.Split(route, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if isIDParam(parts[i]) {
			continue
		}
		if resourceType, ok := pathToResourceType[parts[i]]; ok {
			return resourceType
		}
	}
	return ""
}

func isIDParam(segment string) bool {
	return strings.HasPrefix(segment, ":") || strings.HasPrefix(segment, "*")
}
