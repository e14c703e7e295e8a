package models

import "time"

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is one transcript entry.
type ChatMessage struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ActionKind tags the IntentAction variant.
type ActionKind string

const (
	ActionNavigate       ActionKind = "navigate"
	ActionMutateCart     ActionKind = "mutate_cart"
	ActionMutateWishlist ActionKind = "mutate_wishlist"
	ActionScrollTo       ActionKind = "scroll_to"
	ActionRotateColor    ActionKind = "rotate_color"
	ActionReply          ActionKind = "reply"
	ActionFallback       ActionKind = "fallback"
)

// IntentAction is the dispatcher's result. Only the fields of the tagged
// variant are set:
//
//	navigate        Target (route), Text
//	mutate_cart     ProductID, Quantity, Color, Size
//	mutate_wishlist ProductID
//	scroll_to       Target (anchor), Text
//	rotate_color    ProductID, Color (next color), Text
//	reply/fallback  Text
type IntentAction struct {
	Kind      ActionKind `json:"kind"`
	Target    string     `json:"target,omitempty"`
	ProductID string     `json:"product_id,omitempty"`
	Quantity  int        `json:"quantity,omitempty"`
	Color     string     `json:"color,omitempty"`
	Size      string     `json:"size,omitempty"`
	Text      string     `json:"text,omitempty"`
	Rule      string     `json:"rule,omitempty"`
}

// ChatState is the session's UI facet snapshot.
type ChatState struct {
	Open              bool   `json:"open"`
	ShowingCategories bool   `json:"showing_categories"`
	Recording         bool   `json:"recording"`
	ActiveCategory    string `json:"active_category,omitempty"`
}

// SendChatMessageRequest is the body of POST /chat/messages.
type SendChatMessageRequest struct {
	Text          string `json:"text" binding:"required" example:"go to cart"`
	CurrentPath   string `json:"current_path" example:"/product/product-12"`
	SelectedColor string `json:"selected_color,omitempty" example:"Navy"`
}

// UpdateChatStateRequest sets any subset of the session facets.
type UpdateChatStateRequest struct {
	Open              *bool   `json:"open"`
	ShowingCategories *bool   `json:"showing_categories"`
	Recording         *bool   `json:"recording"`
	ActiveCategory    *string `json:"active_category"`
}

// ChatReply is the body returned after a message is processed.
type ChatReply struct {
	Action  IntentAction  `json:"action"`
	Reply   string        `json:"reply"`
	Pending bool          `json:"pending"`
	State   ChatState     `json:"state"`
	Counts  SessionCounts `json:"counts"`
}

// Severity of a user-facing notification.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is transient user-facing feedback (a toast).
type Notification struct {
	SessionID string    `json:"session_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}
