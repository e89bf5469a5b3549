package lifecycle

import (
	"fmt"

	"tokenvest-backend/internal/usecase/request"
)

// Event names an admin-initiated transition.
type Event string

const (
	EventApprove        Event = "approve"
	EventDeny           Event = "deny"
	EventMarkProcessing Event = "mark_processing"
	EventMarkCompleted  Event = "mark_completed"
)

// Result is a committed single transition. NotifyWarning is set when the
// investor notification failed or timed out; the transition itself stands.
type Result struct {
	Request       *request.DTO `json:"request"`
	NotifyWarning string       `json:"notify_warning,omitempty"`
}

// Outcome classifies one id within a bulk operation.
type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFailed   Outcome = "failed"
)

type BulkItem struct {
	RequestID string  `json:"request_id"`
	Outcome   Outcome `json:"outcome"`
	// Current status for skipped items, error text for failed ones.
	Detail        string `json:"detail,omitempty"`
	NotifyWarning string `json:"notify_warning,omitempty"`
}

// BulkResult reports per-id outcomes. A bulk action has no all-or-nothing
// guarantee: partial success is an expected, reportable outcome.
type BulkResult struct {
	Items    []BulkItem `json:"items"`
	Applied  int        `json:"applied"`
	Skipped  int        `json:"skipped"`
	NotFound int        `json:"not_found"`
	Failed   int        `json:"failed"`
}

func (b *BulkResult) add(item BulkItem) {
	b.Items = append(b.Items, item)
	switch item.Outcome {
	case OutcomeApplied:
		b.Applied++
	case OutcomeSkipped:
		b.Skipped++
	case OutcomeNotFound:
		b.NotFound++
	case OutcomeFailed:
		b.Failed++
	}
}

// Summary renders the operator-facing one-liner, e.g.
// "7 applied, 2 skipped (already transitioned by another admin)".
func (b *BulkResult) Summary() string {
	s := fmt.Sprintf("%d applied", b.Applied)
	if b.Skipped > 0 {
		s += fmt.Sprintf(", %d skipped (already transitioned by another admin)", b.Skipped)
	}
	if b.NotFound > 0 {
		s += fmt.Sprintf(", %d not found", b.NotFound)
	}
	if b.Failed > 0 {
		s += fmt.Sprintf(", %d failed", b.Failed)
	}
	return s
}
