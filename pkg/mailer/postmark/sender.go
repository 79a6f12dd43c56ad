// Package postmark delivers storefront email through Postmark's
// transactional API.
package postmark

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/neonova/storefront/pkg/mailer"
)

// Config holds Postmark credentials. The account token is optional; sending
// only needs the server token.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail  string `env:"POSTMARK_FROM_EMAIL"`
	SenderName   string `env:"POSTMARK_FROM_NAME" envDefault:"NeoNova Website"`
}

// Validate reports mailer.ErrNotConfigured when a required field is empty.
func (c Config) Validate() error {
	if c.ServerToken == "" {
		return fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", mailer.ErrNotConfigured)
	}
	if c.SenderEmail == "" {
		return fmt.Errorf("%w: POSTMARK_FROM_EMAIL is required", mailer.ErrNotConfigured)
	}
	return nil
}

type emailAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// Sender implements mailer.Sender using Postmark.
type Sender struct {
	client emailAPI
	config Config
}

// New creates a Postmark sender. Call cfg.Validate first; New does not check it.
func New(cfg Config) *Sender {
	return &Sender{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		config: cfg,
	}
}

func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	msg := postmark.Email{
		From:     from,
		To:       strings.Join(email.To, ","),
		ReplyTo:  email.ReplyToAddress(),
		Subject:  email.Subject,
		Tag:      firstTag(email.Tags),
		HTMLBody: email.HTML,
		TextBody: email.Text,
	}
	for name, value := range email.Headers {
		msg.Headers = append(msg.Headers, postmark.Header{Name: name, Value: value})
	}

	resp, err := s.client.SendEmail(ctx, msg)
	if err != nil {
		return fmt.Errorf("postmark: failed to send email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark: error %d: %s", resp.ErrorCode, resp.Message)
	}
	return nil
}

// firstTag picks one tag name, since Postmark accepts a single tag per
// message. Names are sorted so the choice is stable.
func firstTag(tags mailer.Tags) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, 0, len(tags))
	for name, value := range tags {
		if v := mailer.TagValue(value); v != "true" {
			names = append(names, v)
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names[0]
}
