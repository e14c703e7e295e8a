package assistant

import "strings"

const suggestionCount = 4

var defaultQuestions = []string{
	"What are your best-selling products?",
	"How can I track my order?",
	"What's your return policy?",
	"Do you offer free shipping?",
}

// SuggestedQuestions returns the quick-reply chips for path, padded with
// generic questions up to four.
func SuggestedQuestions(path string) []string {
	var questions []string
	switch {
	case path == "/" || path == "":
		questions = []string{
			"What's new in this season?",
			"Can you recommend popular items?",
			"Where are your featured collections?",
			"Tell me about your current promotions",
		}
	case strings.Contains(path, productPathMarker):
		questions = []string{
			"Add this to my cart",
			"Add this to my wishlist",
			"Show me similar products",
			"Show this in a different color",
		}
	case strings.Contains(path, "/products"):
		questions = []string{
			"What's the difference between these products?",
			"Can you help me filter these results?",
			"Which of these would you recommend?",
			"Are any of these on sale?",
		}
	case strings.Contains(path, "/cart"):
		questions = []string{
			"Can I get a discount on my order?",
			"How long will shipping take?",
			"Do you offer gift wrapping?",
			"What payment methods do you accept?",
		}
	case strings.Contains(path, "/wishlist"):
		questions = []string{
			"Move all items to cart",
			"Which of these items are on sale?",
			"Remove all items from wishlist",
			"When will these items be back in stock?",
		}
	}
	if n := len(questions); n < suggestionCount {
		questions = append(questions, defaultQuestions[:suggestionCount-n]...)
	}
	return questions
}

// ProactiveMessage is sent after a stretch of inactivity on path.
func ProactiveMessage(path string) string {
	switch {
	case strings.Contains(path, productPathMarker):
		return "Would you like me to help you add this item to your cart or wishlist?"
	case strings.Contains(path, "/products"):
		return "Need help filtering these products or finding something specific?"
	case strings.Contains(path, "/cart"):
		return "Can I help you apply a discount code or proceed to checkout?"
	case strings.Contains(path, "/wishlist"):
		return "Would you like to move any of these items to your cart?"
	default:
		return "Still looking for something? I can help you!"
	}
}
