package request

import (
	"context"
	"fmt"
	"log"
	"time"

	"tokenvest-backend/internal/domain/fee"
	"tokenvest-backend/internal/domain/liquidity"
	"tokenvest-backend/internal/domain/notify"
	"tokenvest-backend/internal/domain/uow"
	"tokenvest-backend/pkg/id"
)

// NotifyTimeout bounds how long a post-commit notification may take before it
// is written off as a warning. The transition itself has already committed.
const NotifyTimeout = 3 * time.Second

type Usecase struct {
	uow      uow.UnitOfWork
	schedule *fee.Schedule
	notifier notify.Notifier
}

func NewUsecase(tx uow.UnitOfWork, schedule *fee.Schedule, n notify.Notifier) *Usecase {
	return &Usecase{uow: tx, schedule: schedule, notifier: n}
}

// Create validates the draft, snapshots the fee quote, and persists the
// request as pending with the next LIQ-YYYY-NNNN number. The quote is fixed
// at creation: later schedule or market-price changes never touch it.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	q, err := u.schedule.Calculate(in.Tokens, in.PricePerToken, in.HoldingMonths)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := &liquidity.Request{
		RequestID:     id.NewID32(),
		InvestorID:    in.InvestorID,
		InvestorName:  in.InvestorName,
		InvestorEmail: in.InvestorEmail,
		PropertyID:    in.PropertyID,
		PropertyName:  in.PropertyName,
		Tokens:        in.Tokens,
		PricePerToken: in.PricePerToken,
		GrossValue:    q.GrossValue,
		HoldingMonths: in.HoldingMonths,
		FeePercent:    q.FeePercent,
		FeeAmount:     q.FeeAmount,
		NetPayout:     q.NetPayout,
		Status:        liquidity.StatusPending,
		Revision:      1,
		RequestedAt:   now,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		n, err := r.Sequences.Next(ctx, now.Year())
		if err != nil {
			return err
		}
		req.RequestNumber = fmt.Sprintf("LIQ-%d-%04d", now.Year(), n)
		return r.Requests.Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return ToDTO(req), nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*DTO, error) {
	var out *DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Requests.GetByRequestID(ctx, requestID)
		if err != nil {
			return err
		}
		out = ToDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns requests newest-first. filter is a status value or "all".
func (u *Usecase) List(ctx context.Context, filter string) ([]DTO, error) {
	if !validFilter(filter) {
		return nil, &liquidity.ValidationError{Field: "status", Message: "unknown status filter"}
	}
	var out []DTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		reqs, err := r.Requests.ListByStatus(ctx, filter)
		if err != nil {
			return err
		}
		out = make([]DTO, 0, len(reqs))
		for i := range reqs {
			out = append(out, *ToDTO(&reqs[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel is the investor-initiated pending → cancelled transition. It is not
// reachable from the admin surface or from bulk actions.
func (u *Usecase) Cancel(ctx context.Context, requestID string) (*DTO, error) {
	var out *DTO
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, req *liquidity.Request) error {
		if req.Status != liquidity.StatusPending {
			return &liquidity.InvalidTransitionError{RequestID: requestID, Current: req.Status, Event: "cancel"}
		}
		rev := req.Revision
		req.Status = liquidity.StatusCancelled
		if err := r.Requests.SaveWithRevision(ctx, req, rev); err != nil {
			return err
		}
		out = ToDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.dispatchNotify(notify.EventCancelled, out)
	return out, nil
}

// dispatchNotify runs after the transaction commits, off the row lock, under
// its own deadline. Failure is logged, never propagated.
func (u *Usecase) dispatchNotify(t notify.EventType, d *DTO) {
	if u.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), NotifyTimeout)
	defer cancel()
	ev := notify.Event{
		Type:          t,
		RequestID:     d.RequestID,
		RequestNumber: d.RequestNumber,
		InvestorID:    d.InvestorID,
		InvestorEmail: d.InvestorEmail,
		Status:        d.Status,
		NetPayout:     d.NetPayout,
		OccurredAt:    time.Now().UTC(),
	}
	if err := u.notifier.Notify(ctx, ev); err != nil {
		log.Printf("notify %s for request %s failed: %v", t, d.RequestID, err)
	}
}

func validateCreate(in CreateInput) error {
	switch {
	case !id.Valid32(in.InvestorID):
		return &liquidity.ValidationError{Field: "investor_id", Message: "must be 32-char lowercase hex"}
	case !id.Valid32(in.PropertyID):
		return &liquidity.ValidationError{Field: "property_id", Message: "must be 32-char lowercase hex"}
	case in.Tokens <= 0:
		return &liquidity.ValidationError{Field: "tokens", Message: "must be a positive integer"}
	case in.PricePerToken <= 0:
		return &liquidity.ValidationError{Field: "price_per_token", Message: "must be positive"}
	case in.HoldingMonths < 0:
		return &liquidity.ValidationError{Field: "holding_months", Message: "must not be negative"}
	}
	return nil
}

func validFilter(filter string) bool {
	switch liquidity.Status(filter) {
	case liquidity.StatusPending, liquidity.StatusProcessing, liquidity.StatusCompleted,
		liquidity.StatusDenied, liquidity.StatusCancelled:
		return true
	}
	return filter == liquidity.StatusFilterAll
}
