package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func echoSession(c *gin.Context) {
	c.String(http.StatusOK, SessionID(c))
}

func TestSessionIdentity(t *testing.T) {
	router := gin.New()
	router.Use(SessionIdentity(false))
	router.GET("/whoami", echoSession)

	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(SessionHeader, "from-header")
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "from-header", w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("cookie is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "from-cookie", w.Body.String())
	})

	t.Run("new visitors get a cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		id := w.Body.String()
		require.NotEmpty(t, id)
		assert.Equal(t, id, w.Header().Get(SessionHeader))
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, SessionCookie, cookies[0].Name)
		assert.Equal(t, id, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})
}

func TestRateLimiter_WithoutRedisPassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(SessionIdentity(false), RateLimiter(1, time.Minute))
	router.POST("/cart", echoSession)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cart", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func useRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	previous := config.RedisClient
	config.RedisClient = client
	t.Cleanup(func() {
		config.RedisClient = previous
		_ = client.Close()
	})
	return mr
}

func TestRateLimiter_WithRedis(t *testing.T) {
	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(SessionIdentity(false), RateLimiter(2, time.Minute))
		router.POST("/cart", echoSession)
		router.GET("/cart", echoSession)
		return router
	}
	post := func(router *gin.Engine, remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/cart", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("cookie-less requests share the caller's bucket", func(t *testing.T) {
		useRedis(t)
		router := newRouter()

		first := post(router, "203.0.113.7:4000")
		second := post(router, "203.0.113.7:4001")
		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusOK, second.Code)
		assert.NotEqual(t, first.Body.String(), second.Body.String(), "each request got a fresh session id")

		third := post(router, "203.0.113.7:4002")
		assert.Equal(t, http.StatusTooManyRequests, third.Code)
	})

	t.Run("other callers and routes have their own buckets", func(t *testing.T) {
		useRedis(t)
		router := newRouter()

		for i := 0; i < 3; i++ {
			post(router, "203.0.113.7:4000")
		}
		assert.Equal(t, http.StatusOK, post(router, "198.51.100.2:4000").Code)

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		mr := useRedis(t)
		router := newRouter()

		for i := 0; i < 3; i++ {
			post(router, "203.0.113.7:4000")
		}
		mr.FastForward(time.Minute + time.Second)
		assert.Equal(t, http.StatusOK, post(router, "203.0.113.7:4000").Code)
	})

	t.Run("fails open when redis is down", func(t *testing.T) {
		mr := useRedis(t)
		router := newRouter()
		mr.Close()

		for i := 0; i < 4; i++ {
			assert.Equal(t, http.StatusOK, post(router, "203.0.113.7:4000").Code)
		}
	})
}

func TestActivityLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := gin.New()
	router.Use(SessionIdentity(false), ActivityLogger(zap.New(core)))
	router.GET("/cart", echoSession)
	router.POST("/cart", echoSession)
	router.DELETE("/cart/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.POST("/products/:id/reviews", echoSession)

	do := func(method, path string) {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set(SessionHeader, "s1")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
	do(http.MethodGet, "/cart")
	do(http.MethodPost, "/cart")
	do(http.MethodDelete, "/cart/abc")
	do(http.MethodPost, "/products/product-1/reviews")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "created_cart_item", entries[0].ContextMap()["action"])
	assert.Equal(t, "s1", entries[0].ContextMap()["session_id"])

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "deleted_cart_item", entries[1].ContextMap()["action"])
	assert.Equal(t, "abc", entries[1].ContextMap()["resource_id"])

	assert.Equal(t, "created_review", entries[2].ContextMap()["action"])
}

func TestExtractResourceType(t *testing.T) {
	cases := map[string]string{
		"/api/v1/cart/:id":             "cart_item",
		"/api/v1/chat/messages":        "chat",
		"/api/v1/products/:id/reviews": "review",
		"/api/v1/products":             "",
	}
	for route, want := range cases {
		t.Run(route, func(t *testing.T) {
			assert.Equal(t, want, extractResourceType(route))
		})
	}
}
