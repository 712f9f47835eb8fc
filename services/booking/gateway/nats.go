package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/constants"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	natspkg "github.com/quickfix-app/quickfix/internal/pkg/nats"
)

// BookingGW publishes booking lifecycle events to NATS
type BookingGW struct {
	producer *natspkg.Producer
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(client *natspkg.Client) *BookingGW {
	return &BookingGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishBookingCreated emits a created lifecycle event
func (g *BookingGW) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	event := eventFromBooking(booking, models.EventKindCreated)
	if err := g.producer.Publish(constants.SubjectBookingCreated, event); err != nil {
		return fmt.Errorf("failed to publish booking created event: %w", err)
	}
	return nil
}

// PublishStatusChanged emits a status_changed lifecycle event
func (g *BookingGW) PublishStatusChanged(ctx context.Context, booking *models.Booking) error {
	event := eventFromBooking(booking, models.EventKindStatusChanged)
	if err := g.producer.Publish(constants.SubjectBookingStatus, event); err != nil {
		return fmt.Errorf("failed to publish booking status event: %w", err)
	}
	return nil
}

func eventFromBooking(booking *models.Booking, kind models.EventKind) models.LifecycleEvent {
	return models.LifecycleEvent{
		BookingID:    booking.ID,
		Kind:         kind,
		Status:       booking.Status,
		RequesterID:  booking.RequesterID,
		TechnicianID: booking.TechnicianID,
		ServiceSkill: booking.ServiceSkill,
		ContactEmail: booking.ContactEmail,
		ContactPhone: booking.ContactPhone,
		Timestamp:    time.Now(),
	}
}
