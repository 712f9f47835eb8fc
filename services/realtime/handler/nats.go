package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/constants"
	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	natspkg "github.com/quickfix-app/quickfix/internal/pkg/nats"
	"github.com/quickfix-app/quickfix/internal/pkg/websocket"
	"github.com/quickfix-app/quickfix/services/notify"
)

// EventHandler fans booking lifecycle events out to real-time room
// subscribers and to the notification dispatcher. A single wildcard
// subscription keeps per-booking delivery in publish order; the
// notification leg runs asynchronously so a slow provider never holds up
// room delivery.
type EventHandler struct {
	cfg        *models.Config
	wsManager  *websocket.Manager
	notifyUC   notify.NotifyUC
	natsClient *natspkg.Client
	consumer   *natspkg.Consumer
}

// NewEventHandler creates a new lifecycle event handler
func NewEventHandler(cfg *models.Config, wsManager *websocket.Manager, notifyUC notify.NotifyUC, natsClient *natspkg.Client) *EventHandler {
	return &EventHandler{
		cfg:        cfg,
		wsManager:  wsManager,
		notifyUC:   notifyUC,
		natsClient: natsClient,
	}
}

// InitNATSConsumers subscribes to the booking lifecycle subjects
func (h *EventHandler) InitNATSConsumers() error {
	consumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectBookingAll, "", h.handleLifecycleEvent)
	if err != nil {
		return fmt.Errorf("failed to subscribe to booking events: %w", err)
	}
	h.consumer = consumer
	return nil
}

// Stop unsubscribes the lifecycle consumer
func (h *EventHandler) Stop() error {
	if h.consumer == nil {
		return nil
	}
	return h.consumer.Stop()
}

func (h *EventHandler) handleLifecycleEvent(message []byte) error {
	var event models.LifecycleEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to unmarshal lifecycle event: %w", err)
	}

	wsEvent := constants.EventBookingStatus
	if event.Kind == models.EventKindCreated {
		wsEvent = constants.EventBookingCreated
	}

	h.wsManager.NotifyRoom(constants.RoomUserPrefix+event.RequesterID, wsEvent, event)
	if event.TechnicianID != "" {
		h.wsManager.NotifyRoom(constants.RoomUserPrefix+event.TechnicianID, wsEvent, event)
	}
	h.wsManager.NotifyRoom(constants.RoomRolePrefix+models.RoleAdmin, wsEvent, event)

	// Fire-and-forget: the notifier bounds itself with its own timeout and
	// swallows every failure.
	go func() {
		timeout := time.Duration(h.cfg.Notify.TimeoutMs) * time.Millisecond
		ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
		defer cancel()
		h.notifyUC.Notify(ctx, event)
	}()

	logger.Debug("Lifecycle event fanned out",
		logger.String("booking_id", event.BookingID),
		logger.String("kind", string(event.Kind)))
	return nil
}
