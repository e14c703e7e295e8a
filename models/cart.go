package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one cart line, unique per (session, product, color, size).
type CartItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID string    `json:"session_id" gorm:"not null;index:idx_cart_line,unique,priority:1"`
	ProductID string    `json:"product_id" gorm:"not null;index:idx_cart_line,unique,priority:2"`
	Color     string    `json:"color" gorm:"index:idx_cart_line,unique,priority:3"`
	Size      string    `json:"size" gorm:"index:idx_cart_line,unique,priority:4"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 1"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

// WishlistItem marks a product as saved by a session.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID string    `json:"session_id" gorm:"not null;uniqueIndex:idx_wishlist_line"`
	ProductID string    `json:"product_id" gorm:"not null;uniqueIndex:idx_wishlist_line"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (w *WishlistItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"product-12"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1" example:"1"`
	Color     string `json:"color" example:"Navy"`
	Size      string `json:"size" example:"M"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required" example:"2"`
}

type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"product-12"`
}

// CartLine is a cart item joined with its product.
type CartLine struct {
	ID        uuid.UUID                 `json:"id"`
	Product   StorefrontProductResponse `json:"product"`
	Quantity  int                       `json:"quantity"`
	Color     string                    `json:"color"`
	Size      string                    `json:"size"`
	UnitPrice decimal.Decimal           `json:"unit_price" swaggertype:"string"`
	Subtotal  decimal.Decimal           `json:"subtotal" swaggertype:"string"`
}

// CartView is the body of GET /cart.
type CartView struct {
	Items     []CartLine      `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// WishlistView is the body of GET /wishlist.
type WishlistView struct {
	Items []StorefrontProductResponse `json:"items"`
	Count int                         `json:"count"`
}

// SessionCounts are the header badges for a session.
type SessionCounts struct {
	CartCount     int `json:"cart_count"`
	WishlistCount int `json:"wishlist_count"`
}
