package liquidity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound               = errors.New("liquidity request not found")
	ErrConcurrentModification = errors.New("liquidity request modified concurrently")
)

// InvalidTransitionError reports an illegal (status, event) pair. The current
// status is carried so callers can reconcile a stale view.
type InvalidTransitionError struct {
	RequestID string
	Current   Status
	Event     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %q from status %q on request %s", e.Event, e.Current, e.RequestID)
}

// ValidationError reports malformed input on a specific field. No state is
// mutated when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
