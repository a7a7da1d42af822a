package service

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrValidation covers malformed input: empty cart, non-positive
	// quantities, negative prices, reservation fields on takeaway orders.
	ErrValidation = errors.New("invalid order payload")

	// ErrNotFound is expected in normal operation, e.g. a stale or foreign
	// QR code. Handlers surface it as 404, never as a system fault.
	ErrNotFound = errors.New("order not found")

	// ErrConflict marks an illegal state transition or a qr_token collision
	// that survived retries.
	ErrConflict = errors.New("conflicting order state")

	// ErrTransient marks a store or broker timeout. The operation may or may
	// not have taken effect; callers decide whether to retry.
	ErrTransient = errors.New("store temporarily unavailable")

	// ErrPermission marks a transition the actor role is not entitled to
	// request. Nothing is mutated.
	ErrPermission = errors.New("actor not permitted to request this transition")
)

// asTransient converts context expiry into the retryable taxonomy while
// leaving other errors untouched.
func asTransient(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return err
}
