package store

import "github.com/pkg/errors"

// Store outcomes. ErrItemDeleted is not a failure in the usual sense:
// it marks a patch that was rejected because the item is soft-deleted,
// which the HTTP layer reports as "not modified" rather than an error.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrCartNotFound = errors.New("cart not found")
	ErrItemDeleted  = errors.New("item is deleted")
)
