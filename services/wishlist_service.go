package services

import (
	"context"

	"github.com/devkeshravani/engagewise-commerce-76/catalog"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"go.uber.org/zap"
)

// WishlistService manages saved products.
type WishlistService struct {
	catalog  *CatalogService
	store    WishlistStore
	notifier Notifier
	logger   *zap.Logger
}

func NewWishlistService(catalog *CatalogService, store WishlistStore, notifier Notifier, logger *zap.Logger) *WishlistService {
	return &WishlistService{catalog: catalog, store: store, notifier: notifier, logger: logger}
}

// Add saves a product. Saving it twice is not an error.
func (s *WishlistService) Add(ctx context.Context, sessionID, productID string) error {
	if _, err := s.catalog.Product(ctx, productID); err != nil {
		return err
	}
	added, err := s.store.AddWishlistItem(ctx, sessionID, productID)
	if err != nil {
		s.logger.Error("❌ Failed to add wishlist item", zap.String("session_id", sessionID), zap.String("product_id", productID), zap.Error(err))
		notify(ctx, s.notifier, sessionID, noteWishlistFailed)
		return err
	}
	if added {
		notify(ctx, s.notifier, sessionID, noteWishlistAdded)
	} else {
		notify(ctx, s.notifier, sessionID, noteWishlistExists)
	}
	return nil
}

func (s *WishlistService) Remove(ctx context.Context, sessionID, productID string) error {
	return s.store.RemoveWishlistItem(ctx, sessionID, productID)
}

func (s *WishlistService) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	return s.store.IsWishlisted(ctx, sessionID, productID)
}

func (s *WishlistService) Count(ctx context.Context, sessionID string) (int, error) {
	return s.store.WishlistCount(ctx, sessionID)
}

func (s *WishlistService) View(ctx context.Context, sessionID string) (models.WishlistView, error) {
	items, err := s.store.ListWishlist(ctx, sessionID)
	if err != nil {
		return models.WishlistView{}, err
	}
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return models.WishlistView{}, err
	}
	view := models.WishlistView{Items: make([]models.StorefrontProductResponse, 0, len(items))}
	for _, it := range items {
		if p, ok := catalog.FindByID(products, it.ProductID); ok {
			view.Items = append(view.Items, models.ToCard(p, p.PrimaryImage()))
		}
	}
	view.Count = len(view.Items)
	return view, nil
}
