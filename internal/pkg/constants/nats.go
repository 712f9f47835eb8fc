package constants

// NATS Subjects
const (
	// Booking lifecycle. All lifecycle events publish under booking.* so a
	// single wildcard subscription observes them in per-booking order.
	SubjectBookingCreated = "booking.created"
	SubjectBookingStatus  = "booking.status"
	SubjectBookingAll     = "booking.*"
)
