package uow

import (
	"context"

	"tokenvest-backend/internal/domain/liquidity"
)

type Repos struct {
	Requests  liquidity.Repository
	Sequences liquidity.SequenceRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the request row first, then pass it in
	WithinRequestTx(ctx context.Context, requestID string, fn func(r Repos, req *liquidity.Request) error) error
}
