package lifecycle

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tokenvest-backend/internal/domain/liquidity"
	"tokenvest-backend/internal/domain/notify"
	"tokenvest-backend/internal/domain/uow"
	"tokenvest-backend/internal/usecase/request"
)

// NotifyTimeout bounds the post-commit notifier call. A hung email provider
// must not stall transitions; the commit already happened.
const NotifyTimeout = 3 * time.Second

// transitions is the admin state machine. Anything not listed fails with
// InvalidTransitionError and mutates nothing. cancelled is investor-only and
// deliberately absent.
var transitions = map[liquidity.Status]map[Event]liquidity.Status{
	liquidity.StatusPending: {
		EventApprove:        liquidity.StatusProcessing,
		EventDeny:           liquidity.StatusDenied,
		EventMarkProcessing: liquidity.StatusProcessing,
	},
	liquidity.StatusProcessing: {
		EventMarkCompleted: liquidity.StatusCompleted,
	},
}

var notifyType = map[Event]notify.EventType{
	EventApprove:        notify.EventApproved,
	EventDeny:           notify.EventDenied,
	EventMarkProcessing: notify.EventProcessing,
	EventMarkCompleted:  notify.EventCompleted,
}

type Usecase struct {
	uow      uow.UnitOfWork
	notifier notify.Notifier
}

func NewUsecase(tx uow.UnitOfWork, n notify.Notifier) *Usecase {
	return &Usecase{uow: tx, notifier: n}
}

func (u *Usecase) Approve(ctx context.Context, requestID string) (*Result, error) {
	return u.transition(ctx, requestID, EventApprove, nil)
}

func (u *Usecase) Deny(ctx context.Context, requestID, reason string) (*Result, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, &liquidity.ValidationError{Field: "reason", Message: "denial reason must not be empty"}
	}
	return u.transition(ctx, requestID, EventDeny, func(req *liquidity.Request) {
		req.DenialReason = reason
	})
}

func (u *Usecase) MarkProcessing(ctx context.Context, requestID string) (*Result, error) {
	return u.transition(ctx, requestID, EventMarkProcessing, nil)
}

func (u *Usecase) MarkCompleted(ctx context.Context, requestID, payoutReference string) (*Result, error) {
	payoutReference = strings.TrimSpace(payoutReference)
	if payoutReference == "" {
		return nil, &liquidity.ValidationError{Field: "payout_reference", Message: "payout reference must not be empty"}
	}
	return u.transition(ctx, requestID, EventMarkCompleted, func(req *liquidity.Request) {
		req.PayoutReference = payoutReference
	})
}

// BulkApprove applies approve to every id independently. Requests already out
// of pending are skipped, not failed: the admin acted on a snapshot that may
// be stale relative to concurrent edits.
func (u *Usecase) BulkApprove(ctx context.Context, requestIDs []string) *BulkResult {
	return u.bulk(ctx, requestIDs, func(ctx context.Context, id string) (*Result, error) {
		return u.Approve(ctx, id)
	})
}

// BulkDeny applies one shared reason to every request in the batch.
func (u *Usecase) BulkDeny(ctx context.Context, requestIDs []string, reason string) (*BulkResult, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &liquidity.ValidationError{Field: "reason", Message: "denial reason must not be empty"}
	}
	return u.bulk(ctx, requestIDs, func(ctx context.Context, id string) (*Result, error) {
		return u.Deny(ctx, id, reason)
	}), nil
}

func (u *Usecase) bulk(ctx context.Context, requestIDs []string, op func(context.Context, string) (*Result, error)) *BulkResult {
	out := &BulkResult{Items: make([]BulkItem, 0, len(requestIDs))}
	for _, id := range requestIDs {
		res, err := op(ctx, id)
		switch {
		case err == nil:
			out.add(BulkItem{RequestID: id, Outcome: OutcomeApplied, NotifyWarning: res.NotifyWarning})
		case errors.Is(err, liquidity.ErrNotFound):
			out.add(BulkItem{RequestID: id, Outcome: OutcomeNotFound})
		case liquidity.IsInvalidTransition(err):
			var ite *liquidity.InvalidTransitionError
			errors.As(err, &ite)
			out.add(BulkItem{RequestID: id, Outcome: OutcomeSkipped, Detail: string(ite.Current)})
		default:
			out.add(BulkItem{RequestID: id, Outcome: OutcomeFailed, Detail: err.Error()})
		}
	}
	return out
}

// transition runs one guarded status change: row-locked read, state-machine
// check, mutate, compare-and-swap commit. A revision conflict is re-read and
// re-evaluated once; a second conflict surfaces as retryable. Notification is
// dispatched only after the transaction has committed and the lock is gone.
func (u *Usecase) transition(ctx context.Context, requestID string, ev Event, mutate func(*liquidity.Request)) (*Result, error) {
	dto, err := u.attempt(ctx, requestID, ev, mutate)
	if errors.Is(err, liquidity.ErrConcurrentModification) {
		dto, err = u.attempt(ctx, requestID, ev, mutate)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Request: dto}
	if warn := u.dispatchNotify(notifyType[ev], dto); warn != "" {
		res.NotifyWarning = warn
	}
	return res, nil
}

func (u *Usecase) attempt(ctx context.Context, requestID string, ev Event, mutate func(*liquidity.Request)) (*request.DTO, error) {
	var dto *request.DTO
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, req *liquidity.Request) error {
		target, ok := transitions[req.Status][ev]
		if !ok {
			return &liquidity.InvalidTransitionError{RequestID: requestID, Current: req.Status, Event: string(ev)}
		}

		rev := req.Revision
		now := time.Now().UTC()
		req.Status = target
		switch target {
		case liquidity.StatusProcessing:
			req.ProcessingStartedAt = &now
		case liquidity.StatusCompleted:
			req.CompletedAt = &now
		}
		if mutate != nil {
			mutate(req)
		}

		if err := r.Requests.SaveWithRevision(ctx, req, rev); err != nil {
			return err
		}
		dto = request.ToDTO(req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// dispatchNotify fires the investor notification exactly once per committed
// transition. Failure is a warning on the result, never a rollback.
func (u *Usecase) dispatchNotify(t notify.EventType, d *request.DTO) string {
	if u.notifier == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), NotifyTimeout)
	defer cancel()
	ev := notify.Event{
		Type:            t,
		RequestID:       d.RequestID,
		RequestNumber:   d.RequestNumber,
		InvestorID:      d.InvestorID,
		InvestorEmail:   d.InvestorEmail,
		Status:          d.Status,
		NetPayout:       d.NetPayout,
		DenialReason:    d.DenialReason,
		PayoutReference: d.PayoutReference,
		OccurredAt:      time.Now().UTC(),
	}
	if err := u.notifier.Notify(ctx, ev); err != nil {
		log.Printf("notify %s for request %s failed: %v", t, d.RequestID, err)
		return "notification failed: " + err.Error()
	}
	return ""
}
