package liquidity

import "context"

// StatusFilterAll lists every request regardless of status.
const StatusFilterAll = "all"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// GetByRequestIDForUpdate locks the row for the enclosing transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	// ListByStatus returns requests ordered by requested_at DESC, id DESC so
	// bulk select-all operates on a deterministic snapshot. filter is a
	// Status value or StatusFilterAll.
	ListByStatus(ctx context.Context, filter string) ([]Request, error)
	// SaveWithRevision persists r only if the stored revision still equals
	// expected, bumping it by one. A stale revision yields
	// ErrConcurrentModification and leaves the row untouched.
	SaveWithRevision(ctx context.Context, r *Request, expected uint64) error
}

// SequenceRepository hands out the next number for a given year.
type SequenceRepository interface {
	Next(ctx context.Context, year int) (uint64, error)
}
