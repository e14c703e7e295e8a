package catalog_cache

import (
	"sync"
	"time"

	"github.com/devkeshravani/engagewise-commerce-76/catalog"
	"github.com/devkeshravani/engagewise-commerce-76/models"
)

const DefaultTTL = 5 * time.Minute

var (
	ttlMu sync.RWMutex
	ttl   = DefaultTTL
)

// SetTTL changes how long entries stay fresh. A non-positive ttl disables
// caching.
func SetTTL(d time.Duration) {
	ttlMu.Lock()
	defer ttlMu.Unlock()
	ttl = d
}

func fresh(fetchedAt time.Time) bool {
	ttlMu.RLock()
	defer ttlMu.RUnlock()
	return ttl > 0 && time.Since(fetchedAt) < ttl
}

// ── Product snapshot ─────────────────────────────────────────────────────────
// The whole catalog, read once and shared by every grid, facet and chat
// request until it expires.

type productEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	productMu    sync.RWMutex
	productCache *productEntry
)

func GetProducts() ([]models.Product, bool) {
	productMu.RLock()
	defer productMu.RUnlock()
	if productCache != nil && fresh(productCache.fetchedAt) {
		return productCache.products, true
	}
	return nil, false
}

func SetProducts(products []models.Product) {
	productMu.Lock()
	defer productMu.Unlock()
	productCache = &productEntry{products: products, fetchedAt: time.Now()}
}

// ── Category registry ────────────────────────────────────────────────────────

type registryEntry struct {
	registry  *catalog.Registry
	fetchedAt time.Time
}

var (
	registryMu    sync.RWMutex
	registryCache *registryEntry
)

func GetRegistry() (*catalog.Registry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if registryCache != nil && fresh(registryCache.fetchedAt) {
		return registryCache.registry, true
	}
	return nil, false
}

func SetRegistry(registry *catalog.Registry) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registryCache = &registryEntry{registry: registry, fetchedAt: time.Now()}
}

// ── Invalidate everything (call after a review lands or a reseed) ────────────

func Invalidate() {
	productMu.Lock()
	productCache = nil
	productMu.Unlock()

	registryMu.Lock()
	registryCache = nil
	registryMu.Unlock()
}
