package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/internal/pkg/retry"
	"github.com/quickfix-app/quickfix/services/notify"
)

type notifier struct {
	cfg     *models.Config
	emailGW notify.EmailGW
	smsGW   notify.SMSGW
	retrier *retry.Retrier
}

// NewNotifier creates the notification dispatcher
func NewNotifier(cfg *models.Config, emailGW notify.EmailGW, smsGW notify.SMSGW) notify.NotifyUC {
	return &notifier{
		cfg:     cfg,
		emailGW: emailGW,
		smsGW:   smsGW,
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  200 * time.Millisecond,
			MaxDelay:   2 * time.Second,
			Multiplier: 2.0,
			Jitter:     true,
			RetryableFunc: func(err error) bool {
				return err != nil
			},
		}),
	}
}

// Notify sends at most one email and one SMS for the event. Channels
// without a contact address are skipped; every delivery failure is logged
// and swallowed here, never surfaced to the caller.
func (n *notifier) Notify(ctx context.Context, event models.LifecycleEvent) {
	subject, text, html, sms := composeMessages(event)

	if event.ContactEmail != "" {
		n.deliver(ctx, "email", event.BookingID, func(ctx context.Context) error {
			return n.emailGW.Send(ctx, event.ContactEmail, subject, text, html)
		})
	}

	if event.ContactPhone != "" {
		n.deliver(ctx, "sms", event.BookingID, func(ctx context.Context) error {
			return n.smsGW.Send(ctx, event.ContactPhone, sms)
		})
	}
}

func (n *notifier) deliver(ctx context.Context, channel, bookingID string, send retry.RetryableFunc) {
	timeout := time.Duration(n.cfg.Notify.TimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := n.retrier.Execute(ctx, send); err != nil {
		logger.Warn("Notification delivery failed",
			logger.String("channel", channel),
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}
}

func composeMessages(event models.LifecycleEvent) (subject, text, html, sms string) {
	switch event.Kind {
	case models.EventKindCreated:
		service := event.ServiceSkill
		if service == "" {
			service = "Service"
		}
		subject = fmt.Sprintf("Booking received - %s", service)
		text = fmt.Sprintf("Hi, your booking has been received. We'll contact you soon. Booking ID: %s", event.BookingID)
		html = fmt.Sprintf("<p>Hi,</p><p>Your booking has been received. We'll contact you soon.</p><p><strong>Booking ID:</strong> %s</p>", event.BookingID)
		sms = fmt.Sprintf("QuickFix: Booking received. ID: %s", event.BookingID)
	default:
		subject = fmt.Sprintf("Booking %s status updated: %s", event.BookingID, event.Status)
		text = fmt.Sprintf("Your booking status is now %s.", event.Status)
		html = fmt.Sprintf("<p>Your booking status is now <strong>%s</strong>.</p>", event.Status)
		sms = fmt.Sprintf("QuickFix: Booking %s -> %s", event.BookingID, event.Status)
	}
	return subject, text, html, sms
}
