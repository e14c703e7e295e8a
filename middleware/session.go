package middleware

import (
	"net/http"
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "engagewise_session_id"

	sessionCookieMaxAge = 60 * 60 * 24 * 30
	maxSessionIDLength  = 128
)

// SessionIdentity resolves the anonymous shopper session for every request.
// The X-Session-ID header wins over the cookie; when neither is present a
// new id is minted and handed back as a cookie.
func SessionIdentity(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(SessionHeader))
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = strings.TrimSpace(cookie)
			}
		}
		if id == "" || len(id) > maxSessionIDLength {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, sessionCookieMaxAge, "/", "", secureCookie, true)
		}

		c.Set(models.SessionContextKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// SessionID returns the id set by SessionIdentity.
func SessionID(c *gin.Context) string {
	return c.GetString(models.SessionContextKey)
}
