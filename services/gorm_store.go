package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the Postgres-backed catalog provider and cart/wishlist store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// ── CatalogProvider ──────────────────────────────────────────────────────────

func (s *GormStore) Products(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

func (s *GormStore) Categories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.db.WithContext(ctx).Order("position, name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return categories, nil
}

// ── CartStore ────────────────────────────────────────────────────────────────

func (s *GormStore) AddItem(ctx context.Context, sessionID, productID string, quantity int, color, size string) error {
	if quantity < 1 {
		return models.ErrInvalidQuantity
	}
	item := models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
	}
	// One statement: insert the line or bump the existing one.
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}, {Name: "color"}, {Name: "size"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (s *GormStore) ListItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	return items, nil
}

func (s *GormStore) UpdateQuantity(ctx context.Context, sessionID string, id uuid.UUID, quantity int) error {
	if quantity < 1 {
		return models.ErrInvalidQuantity
	}
	res := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND session_id = ?", id, sessionID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("update cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrCartItemNotFound
	}
	return nil
}

func (s *GormStore) RemoveItem(ctx context.Context, sessionID string, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrCartItemNotFound
	}
	return nil
}

func (s *GormStore) Count(ctx context.Context, sessionID string) (int, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count cart items: %w", err)
	}
	return int(total), nil
}

// ── WishlistStore ────────────────────────────────────────────────────────────

func (s *GormStore) AddWishlistItem(ctx context.Context, sessionID, productID string) (bool, error) {
	item := models.WishlistItem{SessionID: sessionID, ProductID: productID}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item)
	if res.Error != nil {
		return false, fmt.Errorf("add wishlist item: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) RemoveWishlistItem(ctx context.Context, sessionID, productID string) error {
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&models.WishlistItem{}).Error
	if err != nil {
		return fmt.Errorf("remove wishlist item: %w", err)
	}
	return nil
}

func (s *GormStore) IsWishlisted(ctx context.Context, sessionID, productID string) (bool, error) {
	var item models.WishlistItem
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check wishlist: %w", err)
	}
	return true, nil
}

func (s *GormStore) ListWishlist(ctx context.Context, sessionID string) ([]models.WishlistItem, error) {
	items := make([]models.WishlistItem, 0)
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return items, nil
}

func (s *GormStore) WishlistCount(ctx context.Context, sessionID string) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count wishlist: %w", err)
	}
	return int(count), nil
}
