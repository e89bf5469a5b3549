package mysql

import (
	"context"
	"errors"

	liqDomain "tokenvest-backend/internal/domain/liquidity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, req *liqDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*liqDomain.Request, error) {
	var out liqDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, liqDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*liqDomain.Request, error) {
	var out liqDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, liqDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RequestRepository) ListByStatus(ctx context.Context, filter string) ([]liqDomain.Request, error) {
	q := r.db.WithContext(ctx).Model(&liqDomain.Request{})
	if filter != liqDomain.StatusFilterAll {
		q = q.Where("status = ?", filter)
	}
	var out []liqDomain.Request
	res := q.Order("requested_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// SaveWithRevision commits req only if nobody else has transitioned the row
// since it was read at revision `expected`. The WHERE clause on revision is
// the compare-and-swap; zero rows affected means a concurrent writer won.
func (r *RequestRepository) SaveWithRevision(ctx context.Context, req *liqDomain.Request, expected uint64) error {
	req.Revision = expected + 1
	res := r.db.WithContext(ctx).
		Model(&liqDomain.Request{}).
		Where("request_id = ? AND revision = ?", req.RequestID, expected).
		Updates(map[string]any{
			"status":                req.Status,
			"denial_reason":         req.DenialReason,
			"payout_reference":      req.PayoutReference,
			"processing_started_at": req.ProcessingStartedAt,
			"completed_at":          req.CompletedAt,
			"revision":              req.Revision,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		req.Revision = expected
		return liqDomain.ErrConcurrentModification
	}
	return nil
}
