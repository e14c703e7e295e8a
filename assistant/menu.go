package assistant

// MenuAction is a canned utterance offered in the category menu.
type MenuAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// MenuCategory groups menu actions under a heading.
type MenuCategory struct {
	Name    string       `json:"name"`
	Actions []MenuAction `json:"actions"`
}

var menu = []MenuCategory{
	{Name: "Navigation", Actions: []MenuAction{
		{"Open my cart", "Open my cart"},
		{"Go to home page", "Go to home page"},
		{"Show my wishlist", "Show my wishlist"},
		{"Go to products", "Show me all products"},
		{"Go to my account", "Open my account settings"},
	}},
	{Name: "Products", Actions: []MenuAction{
		{"Add to cart", "Add this item to my cart"},
		{"Add to wishlist", "Add this to my wishlist"},
		{"Show reviews", "Show me customer reviews"},
		{"Show similar products", "Show me similar products"},
		{"Change product color", "Show this in a different color"},
	}},
	{Name: "Assistance", Actions: []MenuAction{
		{"Gift ideas", "Help me find a gift"},
		{"Track order", "Track my order"},
		{"Return item", "Start a return"},
		{"Apply discount", "Apply a discount code"},
		{"Find stores", "Where is the nearest store?"},
	}},
	{Name: "Support", Actions: []MenuAction{
		{"Payment help", "Help with payment"},
		{"FAQs", "Show me FAQs"},
		{"Returns policy", "What is your return policy?"},
		{"Shipping info", "Tell me about shipping"},
		{"Contact us", "Contact customer service"},
	}},
	{Name: "Personal", Actions: []MenuAction{
		{"My recommendations", "Show me recommendations"},
		{"Stock alerts", "Notify me when back in stock"},
		{"My wish list", "Show my saved items"},
		{"Order history", "Show my order history"},
		{"Special offers", "Show me special offers"},
	}},
}

// Menu returns the category menu shown when the chat opens.
func Menu() []MenuCategory {
	out := make([]MenuCategory, len(menu))
	for i, c := range menu {
		out[i] = MenuCategory{Name: c.Name, Actions: append([]MenuAction(nil), c.Actions...)}
	}
	return out
}

// HasMenuCategory reports whether name is a menu heading.
func HasMenuCategory(name string) bool {
	for _, c := range menu {
		if c.Name == name {
			return true
		}
	}
	return false
}
