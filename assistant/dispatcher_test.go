package assistant

import (
	"testing"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testProduct() *models.Product {
	return &models.Product{
		ID:     "product-12",
		Name:   "Silk Blouse",
		Price:  decimal.NewFromFloat(49.99),
		Colors: []string{"Black", "White", "Navy"},
		Sizes:  []string{"S", "M", "L"},
	}
}

func onProductPage() DispatchContext {
	return DispatchContext{CurrentPath: "/product/product-12", CurrentProduct: testProduct()}
}

func TestDispatch_Navigation(t *testing.T) {
	d := NewDispatcher()

	tests := []struct {
		utterance string
		route     string
	}{
		{"go to cart", "/cart"},
		{"Open my cart please", "/cart"},
		{"take me to the HOME PAGE", "/"},
		{"show my saved items", "/wishlist"},
		{"Show me all products", "/products"},
		{"open my account settings", "/account"},
		{"edit my profile", "/account"},
	}
	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			for _, ctx := range []DispatchContext{{}, {CurrentPath: "/wishlist"}, onProductPage()} {
				action := d.Dispatch(tt.utterance, ctx)
				assert.Equal(t, models.ActionNavigate, action.Kind)
				assert.Equal(t, tt.route, action.Target)
				assert.NotEmpty(t, action.Text)
			}
		})
	}
}

func TestDispatch_ProductActions(t *testing.T) {
	d := NewDispatcher()

	t.Run("add to cart uses first color and size", func(t *testing.T) {
		action := d.Dispatch("Add this item to my cart", onProductPage())
		assert.Equal(t, MutateCart("product-12", 1, "Black", "S").Kind, action.Kind)
		assert.Equal(t, "product-12", action.ProductID)
		assert.Equal(t, 1, action.Quantity)
		assert.Equal(t, "Black", action.Color)
		assert.Equal(t, "S", action.Size)
		assert.Equal(t, "product.cart", action.Rule)
	})

	t.Run("add to wishlist", func(t *testing.T) {
		action := d.Dispatch("please add to wishlist", onProductPage())
		assert.Equal(t, models.ActionMutateWishlist, action.Kind)
		assert.Equal(t, "product-12", action.ProductID)
	})

	t.Run("wishlist phrasing with my wishlist navigates first", func(t *testing.T) {
		action := d.Dispatch("Add this to my wishlist", onProductPage())
		assert.Equal(t, models.ActionNavigate, action.Kind)
		assert.Equal(t, "/wishlist", action.Target)
	})

	t.Run("reviews scroll to anchor", func(t *testing.T) {
		action := d.Dispatch("Show me customer reviews", onProductPage())
		assert.Equal(t, models.ActionScrollTo, action.Kind)
		assert.Equal(t, "product-reviews", action.Target)
	})

	t.Run("color rotation wraps around", func(t *testing.T) {
		ctx := onProductPage()
		ctx.SelectedColor = "Navy"
		action := d.Dispatch("Show this in a different color", ctx)
		assert.Equal(t, models.ActionRotateColor, action.Kind)
		assert.Equal(t, "Black", action.Color)
		assert.Equal(t, "I've changed the color to Black for you!", action.Text)
	})

	t.Run("color rotation with a single color", func(t *testing.T) {
		ctx := onProductPage()
		ctx.CurrentProduct.Colors = []string{"Black"}
		action := d.Dispatch("change color", ctx)
		assert.Equal(t, models.ActionReply, action.Kind)
		assert.Contains(t, action.Text, "no other colors available")
	})
}

func TestDispatch_ProductRulesNeedProductContext(t *testing.T) {
	d := NewDispatcher()

	contexts := map[string]DispatchContext{
		"home page":             {CurrentPath: "/"},
		"listing":               {CurrentPath: "/products"},
		"product path, no data": {CurrentPath: "/product/product-404"},
		"product data, no path": {CurrentPath: "/cart", CurrentProduct: testProduct()},
	}
	for name, ctx := range contexts {
		t.Run(name, func(t *testing.T) {
			action := d.Dispatch("add this to my cart", ctx)
			assert.NotEqual(t, models.ActionMutateCart, action.Kind)
			assert.Equal(t, models.ActionFallback, action.Kind)
		})
	}

	t.Run("gated phrase falls through to topics", func(t *testing.T) {
		action := d.Dispatch("change color of my gift", DispatchContext{CurrentPath: "/"})
		assert.Equal(t, "info.gift", action.Rule)
	})
}

func TestDispatch_Topics(t *testing.T) {
	d := NewDispatcher()

	tests := map[string]string{
		"Help me find a gift":                     "info.gift",
		"Track my order":                          "info.tracking",
		"What is your return policy?":             "info.returns",
		"Apply a discount code":                   "info.discount",
		"Where is the nearest store?":             "info.store",
		"What payment methods do you accept?":     "info.payment",
		"How long will shipping take?":            "info.shipping",
		"Contact customer service":                "info.contact",
		"Which of these would you recommend?":     "info.recommend",
		"Notify me when back in stock":            "info.stock",
		"Show my order history":                   "info.history",
		"Are any of these on sale?":               "info.offers",
		"Show me FAQs":                            "info.faq",
		"I want to return a gift":                 "info.gift",
		"What about shipping to my account?":      "nav.account",
		"Can I get a discount on my order?":       "info.discount",
		"When will these items be back in stock?": "info.stock",
	}
	for utterance, rule := range tests {
		t.Run(utterance, func(t *testing.T) {
			action := d.Dispatch(utterance, DispatchContext{CurrentPath: "/products"})
			assert.Equal(t, rule, action.Rule)
			assert.NotEmpty(t, action.Text)
		})
	}
}

func TestDispatch_Fallback(t *testing.T) {
	d := NewDispatcher()

	t.Run("product page mentions the product", func(t *testing.T) {
		action := d.Dispatch("show me similar products", onProductPage())
		assert.Equal(t, models.ActionFallback, action.Kind)
		assert.Contains(t, action.Text, "Silk Blouse")
	})

	t.Run("cart page", func(t *testing.T) {
		action := d.Dispatch("move everything", DispatchContext{CurrentPath: "/cart"})
		assert.Equal(t, cartPrompt, action.Text)
	})

	t.Run("wishlist page", func(t *testing.T) {
		action := d.Dispatch("Move all items to cart", DispatchContext{CurrentPath: "/wishlist"})
		assert.Equal(t, wishlistPrompt, action.Text)
	})

	t.Run("generic quotes the utterance", func(t *testing.T) {
		action := d.Dispatch("  sing a song ", DispatchContext{CurrentPath: "/"})
		assert.Equal(t, models.ActionFallback, action.Kind)
		assert.Contains(t, action.Text, "sing a song")
		assert.Equal(t, "fallback", action.Rule)
	})
}

func TestProductIDFromPath(t *testing.T) {
	id, ok := ProductIDFromPath("/product/product-12")
	assert.True(t, ok)
	assert.Equal(t, "product-12", id)

	id, ok = ProductIDFromPath("/product/product-7/reviews?x=1")
	assert.True(t, ok)
	assert.Equal(t, "product-7", id)

	_, ok = ProductIDFromPath("/products")
	assert.False(t, ok)
	_, ok = ProductIDFromPath("/product/")
	assert.False(t, ok)
}
