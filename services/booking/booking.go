// Package booking owns the authoritative booking lifecycle: creation with
// automatic technician matching, status transitions under a compare-and-set
// write so concurrent callers cannot silently overwrite each other, payment
// marking and lifecycle event publication. Every committed change emits
// exactly one lifecycle event before the call returns.
package booking

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("booking status changed concurrently")
	ErrForbidden         = errors.New("actor is not allowed to modify this booking")
	ErrInvalidRequest    = errors.New("invalid booking request")
	ErrInvalidPayment    = errors.New("invalid payment status change")
	ErrNotCompleted      = errors.New("booking is not completed")
	ErrAlreadyRated      = errors.New("booking already rated")
)
