// Package assistant implements the storefront chat assistant: an ordered
// keyword rule list that turns an utterance into an IntentAction, and the
// per-visitor chat session that holds the transcript.
//
// The dispatcher never performs navigation or store mutations itself. It
// describes them; the caller executes the returned action.
package assistant

import "github.com/devkeshravani/engagewise-commerce-76/models"

// Navigate moves the visitor to route.
func Navigate(route, text string) models.IntentAction {
	return models.IntentAction{Kind: models.ActionNavigate, Target: route, Text: text}
}

// MutateCart adds quantity units of a product variant to the cart.
func MutateCart(productID string, quantity int, color, size string) models.IntentAction {
	return models.IntentAction{
		Kind:      models.ActionMutateCart,
		ProductID: productID,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
	}
}

// MutateWishlist saves a product to the wishlist.
func MutateWishlist(productID string) models.IntentAction {
	return models.IntentAction{Kind: models.ActionMutateWishlist, ProductID: productID}
}

// ScrollTo brings a page anchor into view.
func ScrollTo(anchor, text string) models.IntentAction {
	return models.IntentAction{Kind: models.ActionScrollTo, Target: anchor, Text: text}
}

// RotateColor selects color on the product page.
func RotateColor(productID, color, text string) models.IntentAction {
	return models.IntentAction{Kind: models.ActionRotateColor, ProductID: productID, Color: color, Text: text}
}

// Reply answers with text only.
func Reply(text string) models.IntentAction {
	return models.IntentAction{Kind: models.ActionReply, Text: text}
}

// Fallback answers when no rule matched.
func Fallback(text string) models.IntentAction {
	return models.IntentAction{Kind: models.ActionFallback, Text: text}
}
