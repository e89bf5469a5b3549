package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tokenvest-backend/internal/domain/liquidity"
	"tokenvest-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var (
	_ uow.UnitOfWork               = (*Store)(nil)
	_ liquidity.Repository         = (*requestRepo)(nil)
	_ liquidity.SequenceRepository = (*sequenceRepo)(nil)
)

// Store is an in-memory unit of work backed by maps. A single mutex stands in
// for the database's row locks: every transaction runs under it, so at most
// one transition is in flight per request, matching the store contract.
type Store struct {
	mu     sync.Mutex
	byID   map[string]*liquidity.Request
	seqs   map[int]uint64
	nextPK uint64

	// SaveHook, when set, runs before every SaveWithRevision and may return
	// an error to inject (e.g. a concurrent-modification conflict).
	SaveHook func(req *liquidity.Request) error
}

func New() *Store {
	return &Store{byID: map[string]*liquidity.Request{}, seqs: map[int]uint64{}}
}

func (s *Store) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(uow.Repos{Requests: &requestRepo{s: s}, Sequences: &sequenceRepo{s: s}})
}

func (s *Store) WithinRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, req *liquidity.Request) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := uow.Repos{Requests: &requestRepo{s: s}, Sequences: &sequenceRepo{s: s}}
	req, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
	if err != nil {
		return err
	}
	return fn(r, req)
}

// Snapshot returns a copy of the stored request, for assertions.
func (s *Store) Snapshot(requestID string) (liquidity.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.byID[requestID]
	if !ok {
		return liquidity.Request{}, false
	}
	return *req, true
}

// Seed inserts a request directly, bypassing the transaction path.
func (s *Store) Seed(req liquidity.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPK++
	req.ID = s.nextPK
	if req.Revision == 0 {
		req.Revision = 1
	}
	s.byID[req.RequestID] = &req
}

// ForceStatus flips a stored request's status out-of-band, simulating another
// admin transitioning it between a caller's read and write.
func (s *Store) ForceStatus(requestID string, status liquidity.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req, ok := s.byID[requestID]; ok {
		req.Status = status
		req.Revision++
	}
}

type requestRepo struct{ s *Store }

func (r *requestRepo) Create(ctx context.Context, req *liquidity.Request) error {
	if _, dup := r.s.byID[req.RequestID]; dup {
		return fmt.Errorf("duplicate request id %s", req.RequestID)
	}
	r.s.nextPK++
	req.ID = r.s.nextPK
	cp := *req
	r.s.byID[req.RequestID] = &cp
	return nil
}

func (r *requestRepo) GetByRequestID(ctx context.Context, requestID string) (*liquidity.Request, error) {
	req, ok := r.s.byID[requestID]
	if !ok {
		return nil, liquidity.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *requestRepo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*liquidity.Request, error) {
	return r.GetByRequestID(ctx, requestID)
}

func (r *requestRepo) ListByStatus(ctx context.Context, filter string) ([]liquidity.Request, error) {
	out := make([]liquidity.Request, 0, len(r.s.byID))
	for _, req := range r.s.byID {
		if filter == liquidity.StatusFilterAll || string(req.Status) == filter {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RequestedAt.Equal(out[j].RequestedAt) {
			return out[i].RequestedAt.After(out[j].RequestedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *requestRepo) SaveWithRevision(ctx context.Context, req *liquidity.Request, expected uint64) error {
	if r.s.SaveHook != nil {
		if err := r.s.SaveHook(req); err != nil {
			return err
		}
	}
	stored, ok := r.s.byID[req.RequestID]
	if !ok {
		return liquidity.ErrNotFound
	}
	if stored.Revision != expected {
		return liquidity.ErrConcurrentModification
	}
	req.Revision = expected + 1
	cp := *req
	r.s.byID[req.RequestID] = &cp
	return nil
}

type sequenceRepo struct{ s *Store }

func (r *sequenceRepo) Next(ctx context.Context, year int) (uint64, error) {
	r.s.seqs[year]++
	return r.s.seqs[year], nil
}
