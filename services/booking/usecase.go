package booking

import (
	"context"

	"github.com/quickfix-app/quickfix/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/quickfix-app/quickfix/services/booking BookingUC
type BookingUC interface {
	// CreateBooking validates the request, runs automatic matching when no
	// technician was pre-selected, and persists the booking in Pending.
	// A matching miss or timeout leaves the booking unassigned; it never
	// fails creation.
	CreateBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error)
	ChangeStatus(ctx context.Context, actor models.Actor, bookingID string, target models.BookingStatus) (*models.Booking, error)
	Reassign(ctx context.Context, actor models.Actor, bookingID, technicianID string) (*models.Booking, error)
	MarkPayment(ctx context.Context, actor models.Actor, bookingID string, status models.PaymentStatus) (*models.Booking, error)
	RateBooking(ctx context.Context, actor models.Actor, bookingID string, rating float64) (*models.Booking, error)
	ListBookings(ctx context.Context, actor models.Actor) ([]*models.Booking, error)
}
