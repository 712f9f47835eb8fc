package booking

import (
	"context"

	"github.com/quickfix-app/quickfix/internal/pkg/models"
)

// BookingGW defines the interface for booking event publication
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/quickfix-app/quickfix/services/booking BookingGW
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
	PublishStatusChanged(ctx context.Context, booking *models.Booking) error
}
