package booking

import "github.com/quickfix-app/quickfix/internal/pkg/models"

// forwardNext is the intended forward path through the lifecycle. It is
// only enforced when strict ordering is enabled; the default policy allows
// any move between non-terminal statuses.
var forwardNext = map[models.BookingStatus]models.BookingStatus{
	models.BookingStatusPending:  models.BookingStatusAccepted,
	models.BookingStatusAccepted: models.BookingStatusEnRoute,
	models.BookingStatusEnRoute:  models.BookingStatusArrived,
	models.BookingStatusArrived:  models.BookingStatusCompleted,
}

// CanTransition reports whether a booking in status from may move to
// status to. Terminal statuses reject every transition, including a
// repeated move into the same terminal status. Cancellation is always
// legal while work is outstanding. With strict enabled, non-cancel moves
// must follow the forward path one step at a time.
func CanTransition(from, to models.BookingStatus, strict bool) error {
	if !to.Known() {
		return ErrInvalidTransition
	}
	if from.Terminal() {
		return ErrInvalidTransition
	}
	if to == models.BookingStatusCancelled {
		return nil
	}
	if strict && forwardNext[from] != to {
		return ErrInvalidTransition
	}
	return nil
}
