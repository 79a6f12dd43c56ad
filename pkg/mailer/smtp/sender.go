// Package smtp delivers storefront email over SMTP with go-mail.
package smtp

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/go-mail/mail"

	"github.com/neonova/storefront/pkg/mailer"
)

// TLS modes accepted by Config.TLSMode.
const (
	TLSModeStartTLS = "starttls"
	TLSModeImplicit = "tls"
	TLSModePlain    = "plain"
)

// Config holds SMTP server settings.
type Config struct {
	Host        string `env:"SMTP_HOST"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	SenderEmail string `env:"SMTP_FROM_EMAIL"`
	SenderName  string `env:"SMTP_FROM_NAME" envDefault:"NeoNova Website"`
	TLSMode     string `env:"SMTP_TLS_MODE" envDefault:"starttls"`
}

// Validate reports mailer.ErrNotConfigured when a required field is empty
// and rejects unknown TLS modes.
func (c Config) Validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("%w: SMTP_HOST is required", mailer.ErrNotConfigured)
	case c.Username == "" || c.Password == "":
		return fmt.Errorf("%w: SMTP_USERNAME and SMTP_PASSWORD are required", mailer.ErrNotConfigured)
	case c.SenderEmail == "":
		return fmt.Errorf("%w: SMTP_FROM_EMAIL is required", mailer.ErrNotConfigured)
	}

	switch c.TLSMode {
	case "", TLSModeStartTLS, TLSModeImplicit, TLSModePlain:
		return nil
	default:
		return fmt.Errorf("smtp: unknown tls mode %q", c.TLSMode)
	}
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Sender implements mailer.Sender over SMTP. Each Send opens its own
// connection, so a Sender is safe for concurrent use.
type Sender struct {
	dialer dialer
	config Config
}

// New creates an SMTP sender. Call cfg.Validate first; New does not check it.
func New(cfg Config) *Sender {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}

	switch cfg.TLSMode {
	case TLSModeImplicit:
		d.SSL = true
	case TLSModePlain:
		d.StartTLSPolicy = mail.NoStartTLS
	default:
		d.StartTLSPolicy = mail.MandatoryStartTLS
	}

	return &Sender{dialer: d, config: cfg}
}

func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	// go-mail has no context support; bail out early if the request is gone.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}

	if err := s.dialer.DialAndSend(s.message(email)); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return nil
}

func (s *Sender) message(email *mailer.Email) *mail.Message {
	m := mail.NewMessage()

	if email.From != "" {
		m.SetHeader("From", email.From)
	} else {
		m.SetAddressHeader("From", s.config.SenderEmail, s.config.SenderName)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.ReplyTo != "" {
		m.SetAddressHeader("Reply-To", email.ReplyTo, email.ReplyToName)
	}
	for name, value := range email.Headers {
		m.SetHeader(name, value)
	}

	switch {
	case email.Text != "" && email.HTML != "":
		m.SetBody("text/plain", email.Text)
		m.AddAlternative("text/html", email.HTML)
	case email.HTML != "":
		m.SetBody("text/html", email.HTML)
	default:
		m.SetBody("text/plain", email.Text)
	}

	return m
}
