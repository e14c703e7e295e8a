package services

import (
	"context"
	"fmt"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"go.uber.org/zap"
)

// ReviewService validates and records reviews.
type ReviewService struct {
	catalog  *CatalogService
	store    ReviewStore
	notifier Notifier
	logger   *zap.Logger
}

func NewReviewService(catalog *CatalogService, store ReviewStore, notifier Notifier, logger *zap.Logger) *ReviewService {
	return &ReviewService{catalog: catalog, store: store, notifier: notifier, logger: logger}
}

func (s *ReviewService) List(ctx context.Context, productID string) ([]models.Review, error) {
	if _, err := s.catalog.Product(ctx, productID); err != nil {
		return nil, err
	}
	return s.store.ListReviews(ctx, productID)
}

// Add records a review. Validation failures are returned without touching
// the store.
func (s *ReviewService) Add(ctx context.Context, sessionID, productID string, req models.AddReviewRequest) (models.Review, error) {
	if err := models.ValidateReview(req.UserName, req.Rating); err != nil {
		return models.Review{}, err
	}
	if _, err := s.catalog.Product(ctx, productID); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		ProductID: productID,
		Author:    req.UserName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.store.AddReview(ctx, &review); err != nil {
		s.logger.Error("❌ Failed to add review", zap.String("product_id", productID), zap.Error(err))
		notify(ctx, s.notifier, sessionID, noteReviewFailed)
		return models.Review{}, fmt.Errorf("submit review: %w", err)
	}
	notify(ctx, s.notifier, sessionID, noteReviewSubmitted)
	return review, nil
}
