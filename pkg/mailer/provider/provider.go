// Package provider picks the mailer.Sender implementation named by
// configuration.
package provider

import (
	"fmt"

	"github.com/neonova/storefront/pkg/mailer"
	"github.com/neonova/storefront/pkg/mailer/postmark"
	"github.com/neonova/storefront/pkg/mailer/resend"
	"github.com/neonova/storefront/pkg/mailer/smtp"
)

// Provider names accepted in MAILER_PROVIDER.
const (
	Resend   = "resend"
	Postmark = "postmark"
	SMTP     = "smtp"
)

// Config selects a provider and carries the settings of all of them, so
// switching provider is a single env change.
type Config struct {
	Provider string `env:"MAILER_PROVIDER" envDefault:"resend"`
	Resend   resend.Config
	Postmark postmark.Config
	SMTP     smtp.Config
}

// New returns the configured sender. Missing credentials yield an error
// wrapping mailer.ErrNotConfigured; an unrecognised provider name yields
// mailer.ErrUnknownProvider.
func New(cfg Config) (mailer.Sender, error) {
	switch cfg.Provider {
	case Resend, "":
		if err := cfg.Resend.Validate(); err != nil {
			return nil, err
		}
		return resend.New(cfg.Resend), nil
	case Postmark:
		if err := cfg.Postmark.Validate(); err != nil {
			return nil, err
		}
		return postmark.New(cfg.Postmark), nil
	case SMTP:
		if err := cfg.SMTP.Validate(); err != nil {
			return nil, err
		}
		return smtp.New(cfg.SMTP), nil
	default:
		return nil, fmt.Errorf("%w: %q", mailer.ErrUnknownProvider, cfg.Provider)
	}
}
