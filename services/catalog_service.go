package services

import (
	"context"
	"fmt"

	catalog_cache "github.com/devkeshravani/engagewise-commerce-76/cache"
	"github.com/devkeshravani/engagewise-commerce-76/catalog"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"go.uber.org/zap"
)

// CatalogService serves the cached catalog snapshot and everything derived
// from it: filtered grids, facets, suggestions and product pages.
type CatalogService struct {
	provider CatalogProvider
	reviews  ReviewStore
	images   *ImageResolver
	logger   *zap.Logger
}

func NewCatalogService(provider CatalogProvider, reviews ReviewStore, images *ImageResolver, logger *zap.Logger) *CatalogService {
	return &CatalogService{provider: provider, reviews: reviews, images: images, logger: logger}
}

// Products returns the catalog snapshot. Callers must not modify it.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	if products, ok := catalog_cache.GetProducts(); ok {
		return products, nil
	}
	products, err := s.provider.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Images = s.images.ResolveAll(products[i].Images)
	}
	catalog_cache.SetProducts(products)
	s.logger.Debug("Catalog snapshot refreshed", zap.Int("products", len(products)))
	return products, nil
}

// Registry returns the category registry, falling back to the embedded
// default when the provider has no categories.
func (s *CatalogService) Registry(ctx context.Context) (*catalog.Registry, error) {
	if registry, ok := catalog_cache.GetRegistry(); ok {
		return registry, nil
	}
	categories, err := s.provider.Categories(ctx)
	if err != nil {
		return nil, err
	}

	var registry *catalog.Registry
	if len(categories) == 0 {
		s.logger.Warn("⚠️ No categories stored, using built-in registry")
		if registry, err = catalog.DefaultRegistry(); err != nil {
			return nil, err
		}
	} else {
		for i := range categories {
			categories[i].Image = s.images.Resolve(categories[i].Image)
		}
		registry = catalog.NewRegistry(categories)
	}
	catalog_cache.SetRegistry(registry)
	return registry, nil
}

// Invalidate drops the cached snapshot.
func (s *CatalogService) Invalidate() {
	catalog_cache.Invalidate()
}

// Product looks a product up by id.
func (s *CatalogService) Product(ctx context.Context, id string) (models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return models.Product{}, err
	}
	p, ok := catalog.FindByID(products, id)
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", models.ErrProductNotFound, id)
	}
	return p, nil
}

// List filters and sorts the catalog for state.
func (s *CatalogService) List(ctx context.Context, state models.FilterState) (models.StorefrontProductList, error) {
	products, registry, err := s.snapshot(ctx)
	if err != nil {
		return models.StorefrontProductList{}, err
	}
	return models.StorefrontProductList{
		Title:    catalog.Title(state, registry),
		Filters:  state,
		Products: Cards(catalog.Filter(products, state, registry)),
	}, nil
}

func (s *CatalogService) Facets(ctx context.Context) (models.FilterMetadata, error) {
	products, registry, err := s.snapshot(ctx)
	if err != nil {
		return models.FilterMetadata{}, err
	}
	return catalog.Facets(products, registry), nil
}

// Categories lists the registry with per-category product counts.
func (s *CatalogService) Categories(ctx context.Context) ([]models.CategoryWithProducts, error) {
	products, registry, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	meta := catalog.Facets(products, registry)
	counts := make(map[string]int, len(meta.Categories))
	for _, c := range meta.Categories {
		counts[c.ID] = c.ProductCount
	}
	out := make([]models.CategoryWithProducts, 0, registry.Len())
	for _, c := range registry.Categories() {
		out = append(out, models.CategoryWithProducts{Category: c, ProductCount: counts[c.ID]})
	}
	return out, nil
}

func (s *CatalogService) Featured(ctx context.Context, count int) ([]models.StorefrontProductResponse, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return Cards(catalog.Featured(products, count)), nil
}

func (s *CatalogService) Similar(ctx context.Context, id string) ([]models.StorefrontProductResponse, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := catalog.FindByID(products, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrProductNotFound, id)
	}
	return Cards(catalog.Similar(products, p, catalog.SimilarLimit)), nil
}

func (s *CatalogService) Suggestions(ctx context.Context, query string) ([]models.SearchSuggestion, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	matches := catalog.Suggestions(products, query, catalog.SuggestionLimit)
	out := make([]models.SearchSuggestion, 0, len(matches))
	for _, p := range matches {
		out = append(out, models.SearchSuggestion{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Image:    p.PrimaryImage(),
			Price:    p.Price,
		})
	}
	return out, nil
}

// Detail is the product page payload: the product with its reviews and the
// preselected variant.
func (s *CatalogService) Detail(ctx context.Context, id string) (models.StorefrontProductDetail, error) {
	p, err := s.Product(ctx, id)
	if err != nil {
		return models.StorefrontProductDetail{}, err
	}
	reviews, err := s.reviews.ListReviews(ctx, id)
	if err != nil {
		return models.StorefrontProductDetail{}, err
	}
	p.Reviews = reviews
	return models.StorefrontProductDetail{
		Product:       p,
		SelectedColor: p.DefaultColor(),
		SelectedSize:  p.DefaultSize(),
	}, nil
}

func (s *CatalogService) snapshot(ctx context.Context) ([]models.Product, *catalog.Registry, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, nil, err
	}
	registry, err := s.Registry(ctx)
	if err != nil {
		return nil, nil, err
	}
	return products, registry, nil
}

// Cards converts products into grid cards.
func Cards(products []models.Product) []models.StorefrontProductResponse {
	out := make([]models.StorefrontProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, models.ToCard(p, p.PrimaryImage()))
	}
	return out
}
