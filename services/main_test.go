package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	catalog_cache "github.com/devkeshravani/engagewise-commerce-76/cache"
	"github.com/devkeshravani/engagewise-commerce-76/assistant"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Every test builds its own store; the shared snapshot would leak
	// products between them.
	catalog_cache.SetTTL(0)
	goleak.VerifyTestMain(m)
}

func testCategories() []models.Category {
	return []models.Category{
		{ID: "dresses", Name: "Dresses", Subcategories: []string{"Maxi", "Midi"}},
		{ID: "knitwear", Name: "Knitwear", Subcategories: []string{"Cardigans"}},
	}
}

func testProducts() []models.Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{
			ID: "product-1", Name: "Maxi Dress", Description: "Flowing summer dress",
			Price: decimal.NewFromInt(45), Category: "Dresses", Subcategory: "Maxi",
			Featured: true, Rating: 4.5, Images: []string{"https://img.example/1.jpg"},
			Colors: []string{"Black", "Navy"}, Sizes: []string{"S", "M"}, Tags: []string{"bestseller"},
			Reviews: []models.Review{
				{ID: uuid.New(), ProductID: "product-1", Author: "Ann", Rating: 5, CreatedAt: base},
				{ID: uuid.New(), ProductID: "product-1", Author: "Ben", Rating: 3, CreatedAt: base.Add(48 * time.Hour)},
			},
		},
		{
			ID: "product-2", Name: "Midi Dress", Description: "Office ready",
			Price: decimal.NewFromInt(80), Category: "Dresses", Subcategory: "Midi",
			Rating: 4.0, Images: []string{"https://img.example/2.jpg"},
			Colors: []string{"Red"}, Sizes: []string{"M", "L"},
		},
		{
			ID: "product-3", Name: "Wool Cardigan", Description: "Chunky knit",
			Price: decimal.NewFromInt(20), Category: "Knitwear", Subcategory: "Cardigans",
			Rating: 3.8, Colors: []string{"Gray"}, Sizes: []string{"XS"},
		},
	}
}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []models.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recordingNotifier) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n.Title)
	}
	return out
}

var errStoreDown = errors.New("store down")

// brokenStore fails every cart and wishlist write.
type brokenStore struct {
	*MemoryStore
}

func (brokenStore) AddItem(context.Context, string, string, int, string, string) error {
	return errStoreDown
}

func (brokenStore) AddWishlistItem(context.Context, string, string) (bool, error) {
	return false, errStoreDown
}

type fixture struct {
	store    *MemoryStore
	notifier *recordingNotifier
	sf       *Storefront
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := NewMemoryStore(testCategories(), testProducts())
	notifier := &recordingNotifier{}
	sf := NewStorefront(Dependencies{
		Provider: store,
		Carts:    store,
		Wishlist: store,
		Reviews:  store,
		Notifier: notifier,
	})
	t.Cleanup(sf.Chat.Shutdown)
	return &fixture{store: store, notifier: notifier, sf: sf}
}

func newBrokenFixture(t *testing.T) *fixture {
	t.Helper()
	store := NewMemoryStore(testCategories(), testProducts())
	broken := brokenStore{store}
	notifier := &recordingNotifier{}
	sf := NewStorefront(Dependencies{
		Provider: store,
		Carts:    broken,
		Wishlist: broken,
		Reviews:  store,
		Notifier: notifier,
		Sessions: assistant.SessionConfig{},
	})
	t.Cleanup(sf.Chat.Shutdown)
	return &fixture{store: store, notifier: notifier, sf: sf}
}
