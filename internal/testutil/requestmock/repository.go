package requestmock

import (
	"context"

	domain "tokenvest-backend/internal/domain/liquidity"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                  func(ctx context.Context, r *domain.Request) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.Request, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.Request, error)
	ListByStatusFn            func(ctx context.Context, filter string) ([]domain.Request, error)
	SaveWithRevisionFn        func(ctx context.Context, r *domain.Request, expected uint64) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.Request, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, filter string) ([]domain.Request, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, filter)
	}
	return nil, context.Canceled
}

func (m *Repo) SaveWithRevision(ctx context.Context, r *domain.Request, expected uint64) error {
	if m.SaveWithRevisionFn != nil {
		return m.SaveWithRevisionFn(ctx, r, expected)
	}
	return nil
}

// Sequences is a function-backed mock for domain.SequenceRepository.
type Sequences struct {
	NextFn func(ctx context.Context, year int) (uint64, error)
}

func (m *Sequences) Next(ctx context.Context, year int) (uint64, error) {
	if m.NextFn != nil {
		return m.NextFn(ctx, year)
	}
	return 1, nil
}
