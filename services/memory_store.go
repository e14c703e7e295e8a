package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/google/uuid"
)

// MemoryStore keeps the catalog, carts, wishlists and reviews in process.
// It backs STORE_DRIVER=memory and the tests.
type MemoryStore struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
	carts      map[string][]models.CartItem
	wishlists  map[string][]models.WishlistItem
	reviews    map[string][]models.Review
	now        func() time.Time
}

func NewMemoryStore(categories []models.Category, products []models.Product) *MemoryStore {
	m := &MemoryStore{
		products:   slices.Clone(products),
		categories: slices.Clone(categories),
		carts:      make(map[string][]models.CartItem),
		wishlists:  make(map[string][]models.WishlistItem),
		reviews:    make(map[string][]models.Review),
		now:        time.Now,
	}
	for i := range m.products {
		p := &m.products[i]
		m.reviews[p.ID] = slices.Clone(p.Reviews)
		p.Reviews = nil
	}
	return m
}

// ── CatalogProvider ──────────────────────────────────────────────────────────

func (m *MemoryStore) Products(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.products), ctx.Err()
}

func (m *MemoryStore) Categories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.categories), ctx.Err()
}

// ── CartStore ────────────────────────────────────────────────────────────────

func (m *MemoryStore) AddItem(ctx context.Context, sessionID, productID string, quantity int, color, size string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if quantity < 1 {
		return models.ErrInvalidQuantity
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[sessionID]
	for i := range items {
		if items[i].ProductID == productID && items[i].Color == color && items[i].Size == size {
			items[i].Quantity += quantity
			items[i].UpdatedAt = m.now()
			return nil
		}
	}
	now := m.now()
	m.carts[sessionID] = append(items, models.CartItem{
		ID:        uuid.Must(uuid.NewV7()),
		SessionID: sessionID,
		ProductID: productID,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return nil
}

func (m *MemoryStore) ListItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.carts[sessionID]), ctx.Err()
}

func (m *MemoryStore) UpdateQuantity(ctx context.Context, sessionID string, id uuid.UUID, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if quantity < 1 {
		return models.ErrInvalidQuantity
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[sessionID]
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			items[i].UpdatedAt = m.now()
			return nil
		}
	}
	return models.ErrCartItemNotFound
}

func (m *MemoryStore) RemoveItem(ctx context.Context, sessionID string, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.carts[sessionID]
	n := len(items)
	items = slices.DeleteFunc(items, func(it models.CartItem) bool { return it.ID == id })
	if len(items) == n {
		return models.ErrCartItemNotFound
	}
	m.carts[sessionID] = items
	return nil
}

func (m *MemoryStore) Count(ctx context.Context, sessionID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, it := range m.carts[sessionID] {
		total += it.Quantity
	}
	return total, ctx.Err()
}

// ── WishlistStore ────────────────────────────────────────────────────────────

func (m *MemoryStore) AddWishlistItem(ctx context.Context, sessionID, productID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, it := range m.wishlists[sessionID] {
		if it.ProductID == productID {
			return false, nil
		}
	}
	m.wishlists[sessionID] = append(m.wishlists[sessionID], models.WishlistItem{
		ID:        uuid.Must(uuid.NewV7()),
		SessionID: sessionID,
		ProductID: productID,
		CreatedAt: m.now(),
	})
	return true, nil
}

func (m *MemoryStore) RemoveWishlistItem(ctx context.Context, sessionID, productID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wishlists[sessionID] = slices.DeleteFunc(m.wishlists[sessionID], func(it models.WishlistItem) bool {
		return it.ProductID == productID
	})
	return nil
}

func (m *MemoryStore) IsWishlisted(ctx context.Context, sessionID, productID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	found := slices.ContainsFunc(m.wishlists[sessionID], func(it models.WishlistItem) bool {
		return it.ProductID == productID
	})
	return found, ctx.Err()
}

func (m *MemoryStore) ListWishlist(ctx context.Context, sessionID string) ([]models.WishlistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.wishlists[sessionID]), ctx.Err()
}

func (m *MemoryStore) WishlistCount(ctx context.Context, sessionID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.wishlists[sessionID]), ctx.Err()
}

// ── ReviewStore ──────────────────────────────────────────────────────────────

func (m *MemoryStore) ListReviews(ctx context.Context, productID string) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := slices.Clone(m.reviews[productID])
	slices.SortStableFunc(out, func(a, b models.Review) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return out, ctx.Err()
}

func (m *MemoryStore) AddReview(ctx context.Context, review *models.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.ContainsFunc(m.products, func(p models.Product) bool { return p.ID == review.ProductID }) {
		return fmt.Errorf("%w: %s", models.ErrProductNotFound, review.ProductID)
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.Must(uuid.NewV7())
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = m.now()
	}
	m.reviews[review.ProductID] = append(m.reviews[review.ProductID], *review)
	return nil
}
