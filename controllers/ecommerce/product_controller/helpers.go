package product_controller

import (
	"strconv"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

const (
	defaultLimit    = 12
	maxLimit        = 100
	defaultFeatured = 8
)

// parsePagination reads page and limit, falling back to page 1 of 12.
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	return page, limit
}

// paginate slices one page out of cards. Pages past the end are empty.
func paginate(cards []models.StorefrontProductResponse, page, limit int) ([]models.StorefrontProductResponse, *models.Pagination) {
	total := len(cards)
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	start := (page - 1) * limit
	if start >= total {
		return []models.StorefrontProductResponse{}, meta
	}
	end := min(start+limit, total)
	return cards[start:end], meta
}
