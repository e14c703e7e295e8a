package services

import (
	"context"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/google/uuid"
)

// CatalogProvider supplies the read-only catalog.
type CatalogProvider interface {
	Products(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// CartStore persists cart lines per session. Adding a line that already
// exists for the same product, color and size increments its quantity.
type CartStore interface {
	AddItem(ctx context.Context, sessionID, productID string, quantity int, color, size string) error
	ListItems(ctx context.Context, sessionID string) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, sessionID string, id uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, sessionID string, id uuid.UUID) error
	// Count is the total number of units in the cart.
	Count(ctx context.Context, sessionID string) (int, error)
}

// WishlistStore persists saved products per session.
type WishlistStore interface {
	// AddWishlistItem reports added=false when the product was already saved.
	AddWishlistItem(ctx context.Context, sessionID, productID string) (added bool, err error)
	RemoveWishlistItem(ctx context.Context, sessionID, productID string) error
	IsWishlisted(ctx context.Context, sessionID, productID string) (bool, error)
	ListWishlist(ctx context.Context, sessionID string) ([]models.WishlistItem, error)
	WishlistCount(ctx context.Context, sessionID string) (int, error)
}

// ReviewStore is append-only.
type ReviewStore interface {
	// ListReviews returns a product's reviews, newest first.
	ListReviews(ctx context.Context, productID string) ([]models.Review, error)
	AddReview(ctx context.Context, review *models.Review) error
}

// Notifier delivers transient user-facing feedback.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}
