package booking

import (
	"context"

	"github.com/quickfix-app/quickfix/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/quickfix-app/quickfix/services/booking BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	// UpdateStatusCAS moves the booking from expected to target in a single
	// compare-and-set write. It returns ErrStatusConflict when the stored
	// status no longer equals expected, and ErrBookingNotFound when the id
	// is unknown.
	UpdateStatusCAS(ctx context.Context, bookingID string, expected, target models.BookingStatus) (*models.Booking, error)
	AssignTechnician(ctx context.Context, bookingID, technicianID string) (*models.Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID string, status models.PaymentStatus) (*models.Booking, error)
	SetRated(ctx context.Context, bookingID string, rating float64) error
	ListByRequester(ctx context.Context, requesterID string) ([]*models.Booking, error)
	ListByTechnician(ctx context.Context, technicianID string) ([]*models.Booking, error)
	ListAll(ctx context.Context) ([]*models.Booking, error)
}
