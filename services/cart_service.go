package services

import (
	"context"
	"errors"

	"github.com/devkeshravani/engagewise-commerce-76/catalog"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartService validates cart mutations against the catalog and builds the
// priced cart view.
type CartService struct {
	catalog  *CatalogService
	store    CartStore
	notifier Notifier
	logger   *zap.Logger
}

func NewCartService(catalog *CatalogService, store CartStore, notifier Notifier, logger *zap.Logger) *CartService {
	return &CartService{catalog: catalog, store: store, notifier: notifier, logger: logger}
}

// Add puts a product variant in the cart. Quantity defaults to 1; missing
// color and size default to the product's first option.
func (s *CartService) Add(ctx context.Context, sessionID string, req models.AddCartItemRequest) error {
	p, err := s.catalog.Product(ctx, req.ProductID)
	if err != nil {
		return err
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return models.ErrInvalidQuantity
	}
	color := req.Color
	if color == "" {
		color = p.DefaultColor()
	}
	size := req.Size
	if size == "" {
		size = p.DefaultSize()
	}

	if err := s.store.AddItem(ctx, sessionID, p.ID, qty, color, size); err != nil {
		s.logger.Error("❌ Failed to add cart item", zap.String("session_id", sessionID), zap.String("product_id", p.ID), zap.Error(err))
		notify(ctx, s.notifier, sessionID, noteCartFailed)
		return err
	}
	notify(ctx, s.notifier, sessionID, noteCartAdded)
	return nil
}

// UpdateQuantity sets a line's quantity, clamped to at least 1.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, id uuid.UUID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return s.store.UpdateQuantity(ctx, sessionID, id, quantity)
}

func (s *CartService) Remove(ctx context.Context, sessionID string, id uuid.UUID) error {
	return s.store.RemoveItem(ctx, sessionID, id)
}

func (s *CartService) Count(ctx context.Context, sessionID string) (int, error) {
	return s.store.Count(ctx, sessionID)
}

// View joins the session's cart lines with the catalog. Lines whose product
// left the catalog are skipped.
func (s *CartService) View(ctx context.Context, sessionID string) (models.CartView, error) {
	items, err := s.store.ListItems(ctx, sessionID)
	if err != nil {
		return models.CartView{}, err
	}
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return models.CartView{}, err
	}

	view := models.CartView{Items: make([]models.CartLine, 0, len(items)), Subtotal: decimal.Zero}
	for _, it := range items {
		p, ok := catalog.FindByID(products, it.ProductID)
		if !ok {
			s.logger.Warn("⚠️ Cart line references unknown product", zap.String("product_id", it.ProductID))
			continue
		}
		line := models.CartLine{
			ID:        it.ID,
			Product:   models.ToCard(p, p.PrimaryImage()),
			Quantity:  it.Quantity,
			Color:     it.Color,
			Size:      it.Size,
			UnitPrice: p.Price,
			Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}
		view.Items = append(view.Items, line)
		view.ItemCount += it.Quantity
		view.Subtotal = view.Subtotal.Add(line.Subtotal)
	}
	return view, nil
}

// Counts returns the header badges for a session.
func Counts(ctx context.Context, carts *CartService, wishlist *WishlistService, sessionID string) (models.SessionCounts, error) {
	cartCount, err := carts.Count(ctx, sessionID)
	if err != nil {
		return models.SessionCounts{}, err
	}
	wishlistCount, err := wishlist.Count(ctx, sessionID)
	if err != nil {
		return models.SessionCounts{}, err
	}
	return models.SessionCounts{CartCount: cartCount, WishlistCount: wishlistCount}, nil
}

// IsNotFound reports whether err means a missing product or cart line.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrProductNotFound) || errors.Is(err, models.ErrCartItemNotFound)
}
