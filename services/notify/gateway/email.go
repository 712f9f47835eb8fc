package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/notify"
	"github.com/wneessen/go-mail"
)

// EmailGW delivers notification emails over SMTP
type EmailGW struct {
	cfg    models.NotifyConfig
	client *mail.Client
}

// NewEmailGW creates the SMTP email gateway. When SMTP is not configured
// it returns a no-op gateway instead of an error: notification channels
// are optional by design.
func NewEmailGW(cfg models.NotifyConfig) (notify.EmailGW, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		logger.Info("SMTP not configured, email notifications disabled")
		return &noopEmailGW{}, nil
	}

	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUsername),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTimeout(time.Duration(cfg.TimeoutMs)*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &EmailGW{cfg: cfg, client: client}, nil
}

// Send delivers one email message
func (g *EmailGW) Send(ctx context.Context, to, subject, text, html string) error {
	from := g.cfg.SMTPFrom
	if from == "" {
		from = "no-reply@quickfix.local"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	if html != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, html)
	}

	if err := g.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type noopEmailGW struct{}

func (*noopEmailGW) Send(ctx context.Context, to, subject, text, html string) error {
	logger.Debug("Email disabled, dropping message",
		logger.String("to", to),
		logger.String("subject", subject))
	return nil
}
