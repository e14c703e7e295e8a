package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgReviewStore reads and appends reviews with raw SQL over pgx.
type PgReviewStore struct {
	pool *pgxpool.Pool
}

func NewPgReviewStore(pool *pgxpool.Pool) *PgReviewStore {
	return &PgReviewStore{pool: pool}
}

func (s *PgReviewStore) ListReviews(ctx context.Context, productID string) ([]models.Review, error) {
	query := `
		SELECT id, product_id, user_name, rating, COALESCE(comment, ''), helpful, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Review, error) {
		var r models.Review
		err := row.Scan(&r.ID, &r.ProductID, &r.Author, &r.Rating, &r.Comment, &r.Helpful, &r.CreatedAt)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan reviews: %w", err)
	}
	return reviews, nil
}

func (s *PgReviewStore) AddReview(ctx context.Context, review *models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.Must(uuid.NewV7())
	}
	query := `
		INSERT INTO reviews (id, product_id, user_name, rating, comment, helpful, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, NOW())
		RETURNING created_at
	`
	err := s.pool.QueryRow(ctx, query,
		review.ID,
		review.ProductID,
		review.Author,
		review.Rating,
		review.Comment,
	).Scan(&review.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w: %s", models.ErrProductNotFound, review.ProductID)
	}
	if err != nil {
		return fmt.Errorf("add review: %w", err)
	}
	return nil
}
