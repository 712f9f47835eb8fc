// Package notify delivers advisory email/SMS notifications for booking
// lifecycle events. Delivery is best-effort: every failure is logged and
// swallowed, and an unconfigured channel is a no-op. Nothing here may ever
// affect the outcome of the booking operation that triggered it.
package notify

import (
	"context"

	"github.com/quickfix-app/quickfix/internal/pkg/models"
)

// NotifyUC dispatches notifications for a lifecycle event. It never
// returns an error; notification is advisory and off the critical path.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/quickfix-app/quickfix/services/notify NotifyUC
type NotifyUC interface {
	Notify(ctx context.Context, event models.LifecycleEvent)
}

// EmailGW sends a single email message
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/quickfix-app/quickfix/services/notify EmailGW,SMSGW
type EmailGW interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// SMSGW sends a single SMS message
type SMSGW interface {
	Send(ctx context.Context, to, body string) error
}
