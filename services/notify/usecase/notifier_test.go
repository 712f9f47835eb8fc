package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/notify/mocks"
	"github.com/stretchr/testify/assert"
)

func setupNotifier(t *testing.T) (*gomock.Controller, *mocks.MockEmailGW, *mocks.MockSMSGW, *notifier) {
	ctrl := gomock.NewController(t)
	emailGW := mocks.NewMockEmailGW(ctrl)
	smsGW := mocks.NewMockSMSGW(ctrl)
	cfg := &models.Config{Notify: models.NotifyConfig{TimeoutMs: 5000}}
	n := NewNotifier(cfg, emailGW, smsGW).(*notifier)
	return ctrl, emailGW, smsGW, n
}

func createdEvent() models.LifecycleEvent {
	return models.LifecycleEvent{
		BookingID:    "booking-1",
		Kind:         models.EventKindCreated,
		Status:       models.BookingStatusPending,
		RequesterID:  "user-1",
		ServiceSkill: "plumbing",
		ContactEmail: "user@example.com",
		ContactPhone: "+15551234567",
	}
}

func TestNotify_CreatedSendsBothChannels(t *testing.T) {
	ctrl, emailGW, smsGW, n := setupNotifier(t)
	defer ctrl.Finish()

	emailGW.EXPECT().
		Send(gomock.Any(), "user@example.com", "Booking received - plumbing", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, text, html string) error {
			assert.Contains(t, text, "booking-1")
			assert.Contains(t, html, "booking-1")
			return nil
		})
	smsGW.EXPECT().
		Send(gomock.Any(), "+15551234567", "QuickFix: Booking received. ID: booking-1").
		Return(nil)

	n.Notify(context.Background(), createdEvent())
}

func TestNotify_StatusTemplate(t *testing.T) {
	ctrl, emailGW, smsGW, n := setupNotifier(t)
	defer ctrl.Finish()

	event := createdEvent()
	event.Kind = models.EventKindStatusChanged
	event.Status = models.BookingStatusEnRoute

	emailGW.EXPECT().
		Send(gomock.Any(), "user@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, subject, text, _ string) error {
			assert.Contains(t, subject, string(models.BookingStatusEnRoute))
			assert.Contains(t, text, string(models.BookingStatusEnRoute))
			return nil
		})
	smsGW.EXPECT().Send(gomock.Any(), "+15551234567", gomock.Any()).Return(nil)

	n.Notify(context.Background(), event)
}

func TestNotify_SkipsChannelsWithoutContact(t *testing.T) {
	ctrl, emailGW, _, n := setupNotifier(t)
	defer ctrl.Finish()

	event := createdEvent()
	event.ContactPhone = ""

	// Only the email gateway should be touched.
	emailGW.EXPECT().
		Send(gomock.Any(), "user@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	n.Notify(context.Background(), event)
}

func TestNotify_NoContactInfoIsANoop(t *testing.T) {
	ctrl, _, _, n := setupNotifier(t)
	defer ctrl.Finish()

	event := createdEvent()
	event.ContactEmail = ""
	event.ContactPhone = ""

	n.Notify(context.Background(), event)
}

func TestNotify_DeliveryFailureIsSwallowed(t *testing.T) {
	ctrl, emailGW, smsGW, n := setupNotifier(t)
	defer ctrl.Finish()

	// Persistent failure exhausts the retry budget (1 initial + 2 retries)
	// without surfacing; the SMS channel still gets its attempt.
	emailGW.EXPECT().
		Send(gomock.Any(), "user@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp: connection refused")).
		Times(3)
	smsGW.EXPECT().
		Send(gomock.Any(), "+15551234567", gomock.Any()).
		Return(nil)

	n.Notify(context.Background(), createdEvent())
}

func TestNotify_TransientFailureRecovers(t *testing.T) {
	ctrl, emailGW, _, n := setupNotifier(t)
	defer ctrl.Finish()

	event := createdEvent()
	event.ContactPhone = ""

	gomock.InOrder(
		emailGW.EXPECT().
			Send(gomock.Any(), "user@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp: temporary failure")),
		emailGW.EXPECT().
			Send(gomock.Any(), "user@example.com", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil),
	)

	n.Notify(context.Background(), event)
}
