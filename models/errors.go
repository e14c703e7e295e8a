package models

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrInvalidPriceBand = errors.New("invalid price band")
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidReview    = errors.New("invalid review")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrSessionClosed    = errors.New("chat session closed")
	ErrMissingSession   = errors.New("missing session id")
	ErrEmptyMessage     = errors.New("message text is blank")
)
