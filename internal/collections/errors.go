package collections

import "errors"

var (
	// ErrConflict means a live collection already exists for the indicator.
	ErrConflict = errors.New("collection already exists")

	// ErrNotFound means the requested collection or entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOrder means the order_by expression references unknown
	// columns or is not a column-order expression.
	ErrInvalidOrder = errors.New("invalid order_by expression")

	// ErrInvalidRank means the ranking token could not be parsed.
	ErrInvalidRank = errors.New("invalid ranking token")
)
