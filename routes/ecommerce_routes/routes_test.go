package ecommerce_routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalog_cache "github.com/devkeshravani/engagewise-commerce-76/cache"
	"github.com/devkeshravani/engagewise-commerce-76/middleware"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	catalog_cache.SetTTL(0)
	goleak.VerifyTestMain(m)
}

type envelope struct {
	Message   string             `json:"message"`
	Data      json.RawMessage    `json:"data"`
	Error     bool               `json:"error"`
	Meta      *models.Pagination `json:"meta"`
	SessionID string             `json:"session_id"`
}

type api struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	products := []models.Product{
		{ID: "product-1", Name: "Maxi Dress", Description: "Flowing", Price: decimal.NewFromInt(45),
			Category: "Dresses", Subcategory: "Maxi", Featured: true, Rating: 4.5,
			Colors: []string{"Black", "Navy"}, Sizes: []string{"S", "M"}},
		{ID: "product-2", Name: "Midi Dress", Description: "Office ready", Price: decimal.NewFromInt(80),
			Category: "Dresses", Subcategory: "Midi", Rating: 4.1,
			Colors: []string{"Red"}, Sizes: []string{"M"}},
		{ID: "product-3", Name: "Wool Cardigan", Description: "Chunky knit", Price: decimal.NewFromInt(20),
			Category: "Knitwear", Subcategory: "Cardigans", Rating: 3.9,
			Colors: []string{"Gray"}, Sizes: []string{"XS"}},
	}
	categories := []models.Category{
		{ID: "dresses", Name: "Dresses", Subcategories: []string{"Maxi", "Midi"}},
		{ID: "knitwear", Name: "Knitwear", Subcategories: []string{"Cardigans"}},
	}
	store := services.NewMemoryStore(categories, products)
	sf := services.NewStorefront(services.Dependencies{
		Provider: store, Carts: store, Wishlist: store, Reviews: store,
	})
	services.InitStorefront(sf)
	t.Cleanup(sf.Chat.Shutdown)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.Use(middleware.SessionIdentity(false), middleware.ActivityLogger(zap.NewNop()))
	limit := middleware.RateLimiter(100, time.Minute)
	SetupStorefrontRoutes(v1, limit)
	SetupCartRoutes(v1, limit)
	SetupChatRoutes(v1, limit)
	return &api{t: t, router: router}
}

func (a *api) do(method, path string, body any) (int, envelope) {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "shopper-1")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestProductRoutes(t *testing.T) {
	a := newAPI(t)

	t.Run("filtered grid is paginated", func(t *testing.T) {
		code, env := a.do(http.MethodGet, "/store/products?category=dresses&sort=price-asc&limit=1", nil)
		require.Equal(t, http.StatusOK, code)
		list := decode[models.StorefrontProductList](t, env)
		assert.Equal(t, "Dresses", list.Title)
		require.Len(t, list.Products, 1)
		assert.Equal(t, "product-1", list.Products[0].ID)
		require.NotNil(t, env.Meta)
		assert.Equal(t, 2, env.Meta.Total)
		assert.Equal(t, 2, env.Meta.TotalPages)
		assert.Equal(t, "shopper-1", env.SessionID)
	})

	t.Run("malformed filters are rejected", func(t *testing.T) {
		for _, q := range []string{"price=abc", "price=50-25", "sort=cheapest"} {
			code, env := a.do(http.MethodGet, "/store/products?"+q, nil)
			assert.Equal(t, http.StatusBadRequest, code, q)
			assert.True(t, env.Error)
		}
	})

	t.Run("featured", func(t *testing.T) {
		code, env := a.do(http.MethodGet, "/store/products/featured?count=2", nil)
		require.Equal(t, http.StatusOK, code)
		cards := decode[[]models.StorefrontProductResponse](t, env)
		require.Len(t, cards, 2)
		assert.Equal(t, "product-1", cards[0].ID)
	})

	t.Run("detail and similar", func(t *testing.T) {
		code, env := a.do(http.MethodGet, "/store/products/product-1", nil)
		require.Equal(t, http.StatusOK, code)
		detail := decode[models.StorefrontProductDetail](t, env)
		assert.Equal(t, "Black", detail.SelectedColor)
		assert.False(t, detail.Wishlisted)

		code, env = a.do(http.MethodGet, "/store/products/product-1/similar", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, decode[[]models.StorefrontProductResponse](t, env), 1)
	})

	t.Run("unknown product", func(t *testing.T) {
		code, env := a.do(http.MethodGet, "/store/products/product-404", nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Product not found", env.Message)
	})

	t.Run("categories, metadata and suggestions", func(t *testing.T) {
		code, env := a.do(http.MethodGet, "/store/categories", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, decode[[]models.CategoryWithProducts](t, env), 2)

		code, env = a.do(http.MethodGet, "/store/filters/metadata", nil)
		require.Equal(t, http.StatusOK, code)
		meta := decode[models.FilterMetadata](t, env)
		assert.Equal(t, []string{"XS", "S", "M"}, meta.Sizes)

		code, env = a.do(http.MethodGet, "/store/search/suggestions?q=dress", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, decode[[]models.SearchSuggestion](t, env), 2)
	})
}

func TestReviewRoutes(t *testing.T) {
	a := newAPI(t)

	code, _ := a.do(http.MethodPost, "/store/products/product-2/reviews", map[string]any{"user_name": "Dee", "rating": 9})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.do(http.MethodPost, "/store/products/product-2/reviews", map[string]any{"user_name": "  ", "rating": 4})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.do(http.MethodPost, "/store/products/product-2/reviews", map[string]any{"user_name": "Dee", "rating": 4, "comment": "Great"})
	assert.Equal(t, http.StatusCreated, code)

	code, env := a.do(http.MethodGet, "/store/products/product-2/reviews", nil)
	require.Equal(t, http.StatusOK, code)
	reviews := decode[[]models.Review](t, env)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Dee", reviews[0].Author)
}

func TestCartAndWishlistRoutes(t *testing.T) {
	a := newAPI(t)

	code, env := a.do(http.MethodPost, "/cart/items", map[string]any{"product_id": "product-1", "quantity": 2})
	require.Equal(t, http.StatusCreated, code)
	cart := decode[models.CartView](t, env)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Black", cart.Items[0].Color)
	assert.True(t, decimal.NewFromInt(90).Equal(cart.Subtotal))
	lineID := cart.Items[0].ID.String()

	code, _ = a.do(http.MethodPost, "/cart/items", map[string]any{"product_id": "product-404"})
	assert.Equal(t, http.StatusNotFound, code)

	code, env = a.do(http.MethodPatch, "/cart/items/"+lineID, map[string]any{"quantity": -4})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, decode[models.CartView](t, env).ItemCount)

	code, _ = a.do(http.MethodPatch, "/cart/items/not-a-uuid", map[string]any{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.do(http.MethodPost, "/wishlist/items", map[string]any{"product_id": "product-2"})
	require.Equal(t, http.StatusCreated, code)

	code, env = a.do(http.MethodGet, "/session/counts", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.SessionCounts{CartCount: 1, WishlistCount: 1}, decode[models.SessionCounts](t, env))

	code, env = a.do(http.MethodGet, "/store/products/product-2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[models.StorefrontProductDetail](t, env).Wishlisted)

	code, _ = a.do(http.MethodDelete, "/cart/items/"+lineID, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = a.do(http.MethodDelete, "/cart/items/"+lineID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = a.do(http.MethodDelete, "/wishlist/items/product-2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Zero(t, decode[models.WishlistView](t, env).Count)
}

func TestChatRoutes(t *testing.T) {
	a := newAPI(t)

	code, env := a.do(http.MethodPatch, "/chat/state", map[string]any{"open": true})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[models.ChatState](t, env).Open)

	code, env = a.do(http.MethodPost, "/chat/messages", map[string]any{"text": "add this to my cart", "current_path": "/product/product-3"})
	require.Equal(t, http.StatusOK, code)
	reply := decode[models.ChatReply](t, env)
	assert.Equal(t, models.ActionMutateCart, reply.Action.Kind)
	assert.Equal(t, 1, reply.Counts.CartCount)

	code, _ = a.do(http.MethodPost, "/chat/messages", map[string]any{"current_path": "/"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = a.do(http.MethodPost, "/chat/messages", map[string]any{"text": "   ", "current_path": "/"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = a.do(http.MethodGet, "/chat/transcript", nil)
	require.Equal(t, http.StatusOK, code)
	var transcript struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &transcript))
	assert.Len(t, transcript.Messages, 3, "greeting, question, reply")

	code, env = a.do(http.MethodGet, "/chat/suggestions?path=/product/product-3", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]string](t, env), 4)

	code, _ = a.do(http.MethodGet, "/chat/menu", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = a.do(http.MethodDelete, "/chat", nil)
	require.Equal(t, http.StatusOK, code)
	code, env = a.do(http.MethodGet, "/chat/transcript", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &transcript))
	assert.Empty(t, transcript.Messages)
}
