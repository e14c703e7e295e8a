package assistant

import "fmt"

const (
	Greeting        = "👋 Hi there! I'm your shopping assistant. I can help you navigate the site, find products, and complete tasks. What would you like me to do?"
	ListeningPrompt = "I'm listening! Tell me what you'd like me to do."
	ReviewsAnchor   = "product-reviews"
)

const (
	replyCart     = "Taking you to your cart now!"
	replyHome     = "Redirecting you to the home page!"
	replyWishlist = "Here's your wishlist!"
	replyProducts = "Taking you to all our products!"
	replyAccount  = "Here's your account page!"
	replyReviews  = "Here are the customer reviews for this product!"
	replyNoColors = "Sorry, no other colors available for this product."

	replyGift      = "I'd be happy to help you find a gift! Could you tell me who it's for and what's your budget?"
	replyTracking  = "To track your order, please provide your order number or email address used for the purchase."
	replyReturns   = "Our return policy allows returns within 30 days of purchase. Would you like me to help you start a return process?"
	replyDiscount  = "Please enter your discount code, and I'll help you apply it to your order."
	replyStore     = "To find the nearest store, I need your location. Could you share your city or zip code?"
	replyPayment   = "We accept all major credit cards, PayPal and Apple Pay. Payments are processed securely at checkout."
	replyShipping  = "Standard shipping takes 3-5 business days and is free on orders over $50. Express delivery is available at checkout."
	replyContact   = "You can reach our customer service team at support@engagewise.shop or by phone, Monday to Friday from 9am to 6pm."
	replyRecommend = "Our best-sellers this week are in the featured collection on the home page. Tell me what you're shopping for and I'll narrow it down."
	replyStock     = "I can let you know when an item is back in stock. Open the product page and ask me to add it to your wishlist."
	replyHistory   = "Your order history is on your account page. Ask me to open your account and I'll take you there."
	replyOffers    = "Items on sale show their original price crossed out. Browse all products and sort by price to find the best deals."
	replyFAQ       = "Popular topics: shipping, returns, payment methods and order tracking. Ask me about any of them."
)

// Mutation outcomes, used by the caller after it executes a mutate action.
const (
	CartFailed      = "I couldn't add this item to your cart. Please try again later."
	CartErrored     = "There was a problem adding this item to your cart."
	WishlistFailed  = "I couldn't add this item to your wishlist. Please try again later."
	WishlistErrored = "There was a problem adding this item to your wishlist."
	ProductMissing  = "I couldn't find this product. Please try again."
)

func CartAdded(name string) string {
	return fmt.Sprintf("I've added %s to your cart!", name)
}

func WishlistAdded(name string) string {
	return fmt.Sprintf("I've added %s to your wishlist!", name)
}

func colorChanged(color string) string {
	return fmt.Sprintf("I've changed the color to %s for you!", color)
}

func productPrompt(name string) string {
	return fmt.Sprintf("I can help you with %s. Try asking me to add it to your cart or wishlist, show customer reviews, or show it in a different color.", name)
}

const (
	cartPrompt     = "I can help with your cart. Ask me about shipping times, discount codes or payment methods."
	wishlistPrompt = "I can help with your wishlist. Open a saved item and ask me to add it to your cart."
)

func clarify(utterance string) string {
	return fmt.Sprintf("I'll assist you with %s. Could you provide more details?", utterance)
}
