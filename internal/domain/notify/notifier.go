package notify

import (
	"context"
	"time"
)

type EventType string

const (
	EventApproved   EventType = "approved"
	EventDenied     EventType = "denied"
	EventProcessing EventType = "processing"
	EventCompleted  EventType = "completed"
	EventCancelled  EventType = "cancelled"
)

// Event is the payload handed to the notifier on every committed transition.
// The request fields are a snapshot taken after the commit; the notifier must
// not reach back into the store.
type Event struct {
	Type          EventType `json:"type"`
	RequestID     string    `json:"request_id"`
	RequestNumber string    `json:"request_number"`
	InvestorID    string    `json:"investor_id"`
	InvestorEmail string    `json:"investor_email"`
	Status        string    `json:"status"`
	NetPayout     float64   `json:"net_payout"`
	// Set on denied events only.
	DenialReason string `json:"denial_reason,omitempty"`
	// Set on completed events only.
	PayoutReference string    `json:"payout_reference,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Notifier delivers investor-facing transition notifications. Delivery is
// best-effort: the state transition has already committed by the time Notify
// runs, and a failure here must never roll it back.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}
