package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quickfix-app/quickfix/internal/pkg/logger"
	"github.com/quickfix-app/quickfix/internal/pkg/models"
	"github.com/quickfix-app/quickfix/services/notify"
)

// SMSGW delivers notification SMS through a Twilio-compatible REST API
type SMSGW struct {
	cfg        models.NotifyConfig
	httpClient *http.Client
}

// NewSMSGW creates the SMS gateway, or a no-op one when the SMS provider
// is not configured.
func NewSMSGW(cfg models.NotifyConfig) notify.SMSGW {
	if cfg.SMSAccountID == "" || cfg.SMSAuthToken == "" || cfg.SMSFrom == "" || cfg.SMSAPIURL == "" {
		logger.Info("SMS provider not configured, SMS notifications disabled")
		return &noopSMSGW{}
	}

	return &SMSGW{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
	}
}

// Send delivers one SMS message
func (g *SMSGW) Send(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json",
		strings.TrimRight(g.cfg.SMSAPIURL, "/"), g.cfg.SMSAccountID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", g.cfg.SMSFrom)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.SetBasicAuth(g.cfg.SMSAccountID, g.cfg.SMSAuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SMS provider returned status %d", resp.StatusCode)
	}
	return nil
}

type noopSMSGW struct{}

func (*noopSMSGW) Send(ctx context.Context, to, body string) error {
	logger.Debug("SMS disabled, dropping message", logger.String("to", to))
	return nil
}
