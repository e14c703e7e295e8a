package assistant

import (
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/models"
)

// rule is one entry of the ordered rule list. match receives the
// lower-cased utterance.
type rule struct {
	name   string
	match  func(input string, ctx DispatchContext) bool
	action func(ctx DispatchContext, utterance string) models.IntentAction
}

func containsAny(phrases ...string) func(string, DispatchContext) bool {
	return func(input string, _ DispatchContext) bool {
		for _, p := range phrases {
			if strings.Contains(input, p) {
				return true
			}
		}
		return false
	}
}

// onProduct gates a phrase match on a product page with a resolved product.
func onProduct(phrases ...string) func(string, DispatchContext) bool {
	match := containsAny(phrases...)
	return func(input string, ctx DispatchContext) bool {
		return ctx.OnProductPage() && match(input, ctx)
	}
}

func navigateTo(route, text string) func(DispatchContext, string) models.IntentAction {
	return func(DispatchContext, string) models.IntentAction { return Navigate(route, text) }
}

func replyWith(text string) func(DispatchContext, string) models.IntentAction {
	return func(DispatchContext, string) models.IntentAction { return Reply(text) }
}

// defaultRules is evaluated top to bottom; the first match wins.
// Navigation comes first, then product-page actions, then topics.
func defaultRules() []rule {
	return []rule{
		{"nav.cart", containsAny("open my cart", "go to cart"), navigateTo("/cart", replyCart)},
		{"nav.home", containsAny("home page"), navigateTo("/", replyHome)},
		{"nav.wishlist", containsAny("my wishlist", "saved items"), navigateTo("/wishlist", replyWishlist)},
		{"nav.products", containsAny("all products", "products page"), navigateTo("/products", replyProducts)},
		{"nav.account", containsAny("account", "profile"), navigateTo("/account", replyAccount)},

		{"product.cart", onProduct("add to cart", "add this item to my cart", "add this to my cart"), addToCart},
		{"product.wishlist", onProduct("add to wishlist", "add this to my wishlist"), addToWishlist},
		{"product.reviews", onProduct("customer reviews", "show reviews"), func(DispatchContext, string) models.IntentAction {
			return ScrollTo(ReviewsAnchor, replyReviews)
		}},
		{"product.color", onProduct("different color", "change color"), rotateColor},

		{"info.gift", containsAny("gift"), replyWith(replyGift)},
		{"info.tracking", containsAny("track my order", "order status"), replyWith(replyTracking)},
		{"info.returns", containsAny("return", "exchange"), replyWith(replyReturns)},
		{"info.discount", containsAny("discount", "promo code"), replyWith(replyDiscount)},
		{"info.store", containsAny("nearest store", "store location"), replyWith(replyStore)},
		{"info.payment", containsAny("payment", "pay with"), replyWith(replyPayment)},
		{"info.shipping", containsAny("shipping", "delivery"), replyWith(replyShipping)},
		{"info.contact", containsAny("contact", "customer service"), replyWith(replyContact)},
		{"info.recommend", containsAny("recommend", "best-selling", "best selling"), replyWith(replyRecommend)},
		{"info.stock", containsAny("back in stock", "notify me"), replyWith(replyStock)},
		{"info.history", containsAny("order history", "past orders"), replyWith(replyHistory)},
		{"info.offers", containsAny("special offer", "promotion", "on sale"), replyWith(replyOffers)},
		{"info.faq", containsAny("faq"), replyWith(replyFAQ)},
	}
}

func addToCart(ctx DispatchContext, _ string) models.IntentAction {
	p := ctx.CurrentProduct
	return MutateCart(p.ID, 1, p.DefaultColor(), p.DefaultSize())
}

func addToWishlist(ctx DispatchContext, _ string) models.IntentAction {
	return MutateWishlist(ctx.CurrentProduct.ID)
}

func rotateColor(ctx DispatchContext, _ string) models.IntentAction {
	p := ctx.CurrentProduct
	next, ok := NextColor(p.Colors, ctx.SelectedColor)
	if !ok {
		return Reply(replyNoColors)
	}
	return RotateColor(p.ID, next, colorChanged(next))
}

// fallback picks a prompt for the page the visitor is on.
func fallback(ctx DispatchContext, utterance string) models.IntentAction {
	switch {
	case ctx.OnProductPage():
		return Fallback(productPrompt(ctx.CurrentProduct.Name))
	case strings.Contains(ctx.CurrentPath, "/cart"):
		return Fallback(cartPrompt)
	case strings.Contains(ctx.CurrentPath, "/wishlist"):
		return Fallback(wishlistPrompt)
	default:
		return Fallback(clarify(strings.TrimSpace(utterance)))
	}
}
