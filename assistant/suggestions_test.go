package assistant

import (
	"testing"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/stretchr/testify/assert"
)

func TestSuggestedQuestions(t *testing.T) {
	for _, path := range []string{"/", "/product/product-1", "/products", "/cart", "/wishlist", "/account"} {
		t.Run(path, func(t *testing.T) {
			assert.Len(t, SuggestedQuestions(path), 4)
		})
	}
	assert.Equal(t, defaultQuestions, SuggestedQuestions("/account"))
	assert.Equal(t, "Add this to my cart", SuggestedQuestions("/product/product-1")[0])
}

func TestProactiveMessage(t *testing.T) {
	assert.Contains(t, ProactiveMessage("/product/product-3"), "add this item")
	assert.Contains(t, ProactiveMessage("/cart"), "discount code")
	assert.Equal(t, "Still looking for something? I can help you!", ProactiveMessage("/"))
}

// Every canned menu action must resolve to something other than the
// generic clarification on the page it is meant for.
func TestMenu_ActionsDispatch(t *testing.T) {
	d := NewDispatcher()
	ctx := DispatchContext{CurrentPath: "/product/product-12", CurrentProduct: testProduct()}

	menu := Menu()
	assert.Len(t, menu, 5)
	assert.True(t, HasMenuCategory("Support"))
	assert.False(t, HasMenuCategory("Billing"))

	for _, category := range menu {
		for _, item := range category.Actions {
			action := d.Dispatch(item.Action, ctx)
			if item.Action == "Show me similar products" {
				assert.Equal(t, models.ActionFallback, action.Kind)
				continue
			}
			assert.NotEqual(t, models.ActionFallback, action.Kind, item.Action)
		}
	}
}
