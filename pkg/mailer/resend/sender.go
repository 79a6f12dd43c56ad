// Package resend delivers storefront email through the Resend API.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/neonova/storefront/pkg/mailer"
)

// emailsAPI is the slice of the Resend client the sender calls.
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	emails emailsAPI
	config Config
}

// New creates a Resend sender. Call cfg.Validate first; New does not check it.
func New(cfg Config) *Sender {
	return &Sender{
		emails: resend.NewClient(cfg.APIKey).Emails,
		config: cfg,
	}
}

func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyToAddress(),
		Headers: email.Headers,
	}

	if len(email.Tags) > 0 {
		req.Tags = make([]resend.Tag, 0, len(email.Tags))
		for name, value := range email.Tags {
			req.Tags = append(req.Tags, resend.Tag{Name: name, Value: mailer.TagValue(value)})
		}
	}

	resp, err := s.emails.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	if resp == nil || resp.Id == "" {
		return fmt.Errorf("resend: empty response for email to %v", email.To)
	}

	return nil
}
