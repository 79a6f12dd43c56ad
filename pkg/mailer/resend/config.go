package resend

import (
	"fmt"

	"github.com/neonova/storefront/pkg/mailer"
)

// Config holds Resend credentials. It is parsed from the environment by
// pkg/config.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME" envDefault:"NeoNova Website"`
}

// Validate reports mailer.ErrNotConfigured when a required field is empty.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%w: RESEND_API_KEY is required", mailer.ErrNotConfigured)
	}
	if c.SenderEmail == "" {
		return fmt.Errorf("%w: RESEND_FROM_EMAIL is required", mailer.ErrNotConfigured)
	}
	return nil
}
