package services

import (
	"github.com/devkeshravani/engagewise-commerce-76/assistant"
	"github.com/devkeshravani/engagewise-commerce-76/catalog"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the storefront services run on.
type Dependencies struct {
	Provider CatalogProvider
	Carts    CartStore
	Wishlist WishlistStore
	Reviews  ReviewStore
	Notifier Notifier
	Images   *ImageResolver
	Logger   *zap.Logger
	Sessions assistant.SessionConfig
}

// Storefront bundles the services the controllers call.
type Storefront struct {
	Catalog  *CatalogService
	Carts    *CartService
	Wishlist *WishlistService
	Reviews  *ReviewService
	Chat     *ChatService
}

var storefront *Storefront

func NewStorefront(deps Dependencies) *Storefront {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	catalogService := NewCatalogService(deps.Provider, deps.Reviews, deps.Images, logger)
	carts := NewCartService(catalogService, deps.Carts, deps.Notifier, logger)
	wishlist := NewWishlistService(catalogService, deps.Wishlist, deps.Notifier, logger)
	return &Storefront{
		Catalog:  catalogService,
		Carts:    carts,
		Wishlist: wishlist,
		Reviews:  NewReviewService(catalogService, deps.Reviews, deps.Notifier, logger),
		Chat:     NewChatService(assistant.NewSessionRegistry(deps.Sessions), catalogService, carts, wishlist, logger),
	}
}

// InitStorefront installs the services used by the controllers.
func InitStorefront(s *Storefront) {
	storefront = s
}

// GetStorefront returns the installed services. It panics when
// InitStorefront has not run.
func GetStorefront() *Storefront {
	if storefront == nil {
		panic("services: storefront not initialised")
	}
	return storefront
}

// SeededMemoryStore builds an in-memory store holding the built-in category
// registry and a generated catalog.
func SeededMemoryStore(count int, seed uint64) (*MemoryStore, error) {
	registry, err := catalog.DefaultRegistry()
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(registry.Categories(), catalog.Generate(registry, count, seed)), nil
}
