// Package handlers holds the storefront's HTTP endpoints.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/neonova/storefront"
	"github.com/neonova/storefront/middlewares"
	"github.com/neonova/storefront/pkg/mailer"
	"github.com/neonova/storefront/pkg/metrics"
	"github.com/neonova/storefront/pkg/submission"
)

// SendEmailPath is the relay route the site forms post to.
const SendEmailPath = "/api/send-email"

// Client-facing messages of the relay.
const (
	MsgEmailSent         = "Email sent successfully"
	MsgMissingFields     = "Missing required fields"
	MsgUnsupportedType   = "Unsupported email type"
	MsgNotConfigured     = "Email service not configured"
	MsgFailedToSendEmail = "Failed to send email"
)

// RelayConfig is the static configuration of the relay.
type RelayConfig struct {
	AdminEmail     string // notification recipient
	SiteName       string // subject prefix, default "NeoNova"
	CurrencySymbol string // quote price symbol, default "€"
}

// SendEmailResponse is the success body.
type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendEmail relays contact and quote submissions to the shop owner.
// It holds no mutable state; each request sends at most one email.
type SendEmail struct {
	sender    mailer.Sender
	metrics   *metrics.Metrics
	configErr error
	render    submission.RenderOptions
	admin     string
}

// SendEmailOption configures SendEmail.
type SendEmailOption func(*SendEmail)

// WithSubmissionMetrics counts submissions by type and outcome.
func WithSubmissionMetrics(m *metrics.Metrics) SendEmailOption {
	return func(h *SendEmail) {
		h.metrics = m
	}
}

// NewSendEmail builds the relay. A nil sender or an empty admin address is
// allowed: the endpoint then answers 500 "Email service not configured".
func NewSendEmail(cfg RelayConfig, sender mailer.Sender, opts ...SendEmailOption) *SendEmail {
	h := &SendEmail{
		sender: sender,
		admin:  strings.TrimSpace(cfg.AdminEmail),
		render: submission.RenderOptions{
			SiteName:       cfg.SiteName,
			CurrencySymbol: cfg.CurrencySymbol,
		},
	}
	for _, opt := range opts {
		opt(h)
	}

	switch {
	case sender == nil:
		h.configErr = errors.Join(mailer.ErrNotConfigured, errors.New("no mail provider"))
	case h.admin == "":
		h.configErr = errors.Join(mailer.ErrNotConfigured, errors.New("ADMIN_EMAIL is empty"))
	}
	return h
}

// Configured returns nil when the relay can dispatch, or the reason it cannot.
// The health readiness check reports it.
func (h *SendEmail) Configured() error {
	return h.configErr
}

// Routes registers POST /api/send-email. Other methods get the app-wide 405.
func (h *SendEmail) Routes(r storefront.Router) {
	r.POST(SendEmailPath, h.handle, middlewares.Recover(middlewares.WithRecoverMessage(MsgFailedToSendEmail)))
}

func (h *SendEmail) handle(c storefront.Context) error {
	var req submission.Request
	if err := c.BindJSON(&req); err != nil {
		h.metrics.Submission("", metrics.OutcomeInvalid)
		return storefront.ErrBadRequest(MsgMissingFields, storefront.WithError(err))
	}
	kind := string(req.Type)

	if err := req.Validate(); err != nil {
		h.metrics.Submission(kind, metrics.OutcomeInvalid)
		if errors.Is(err, submission.ErrUnsupportedType) {
			return storefront.ErrBadRequest(MsgUnsupportedType, storefront.WithError(err))
		}
		return storefront.ErrBadRequest(MsgMissingFields, storefront.WithError(err))
	}

	if h.configErr != nil {
		h.metrics.Submission(kind, metrics.OutcomeNotConfigured)
		c.LogError("email service not configured", slog.String("error", h.configErr.Error()))
		return storefront.ErrInternal(MsgNotConfigured, storefront.WithError(h.configErr))
	}

	rendered, err := submission.Render(&req, h.render)
	if err != nil {
		h.metrics.Submission(kind, metrics.OutcomeFailed)
		c.LogError("render notification failed", slog.String("type", kind), slog.String("error", err.Error()))
		return storefront.ErrInternal(MsgFailedToSendEmail, storefront.WithError(err))
	}

	email := &mailer.Email{
		To:          []string{h.admin},
		Subject:     rendered.Subject,
		HTML:        rendered.HTML,
		Text:        rendered.Text,
		ReplyTo:     req.ReplyToEmail(),
		ReplyToName: req.ReplyToName(),
		Tags:        mailer.Tags{"type": kind},
	}
	if id := middlewares.GetRequestID(c); id != "" {
		email.Headers = map[string]string{"X-Request-ID": id}
	}

	if err := mailer.Dispatch(c, h.sender, email); err != nil {
		h.metrics.Submission(kind, metrics.OutcomeFailed)
		c.LogError("email dispatch failed",
			slog.String("type", kind),
			slog.String("error", err.Error()),
		)
		return storefront.ErrInternal(MsgFailedToSendEmail, storefront.WithError(err))
	}

	h.metrics.Submission(kind, metrics.OutcomeSent)
	c.LogInfo("email sent", slog.String("type", kind))
	return c.JSON(http.StatusOK, SendEmailResponse{Success: true, Message: MsgEmailSent})
}
