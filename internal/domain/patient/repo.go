package patient

import (
	"context"
	"errors"
)

// Sentinel errors surfaced by the service and mapped to HTTP statuses at the
// handler layer.
var (
	ErrNotFound         = errors.New("patient record does not exist")
	ErrAlreadyExists    = errors.New("patient already exists")
	ErrInvalidSortField = errors.New("invalid sort field, select from: height, weight, bmi")
	ErrInvalidSortOrder = errors.New("invalid sort order, select from: asc, desc")
)

// Store persists the whole keyed collection as a single document. Load and
// Save always move the full collection; there is no per-record access path.
type Store interface {
	Load(ctx context.Context) (Collection, error)
	Save(ctx context.Context, col Collection) error
}
