// Package mailer defines the contract between the storefront and email
// providers.
//
// Providers live in sub-packages (resend, postmark, smtp) and all implement
// Sender. Callers hand a prepared Email to Dispatch, which checks it and
// wraps any provider failure in ErrSendFailed:
//
//	email := &mailer.Email{
//		To:          []string{"admin@example.com"},
//		Subject:     "NeoNova Contact: Hello",
//		HTML:        html,
//		Text:        text,
//		ReplyTo:     "ana@example.com",
//		ReplyToName: "Ana",
//	}
//	if err := mailer.Dispatch(ctx, sender, email); err != nil {
//		// errors.Is(err, mailer.ErrSendFailed)
//	}
//
// Delivery is attempted once. There is no retry or queue.
package mailer

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

// Sender delivers a fully prepared Email.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, email *Email) error

func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}

// Validate checks the fields every provider needs.
func Validate(email *Email) error {
	if email == nil || len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" && email.Text == "" {
		return ErrNoContent
	}
	if email.ReplyTo != "" && !singleAddress(email.ReplyTo) {
		return ErrInvalidReplyTo
	}
	return nil
}

// Dispatch validates email and sends it once through sender.
// A nil sender reports ErrNotConfigured.
func Dispatch(ctx context.Context, sender Sender, email *Email) error {
	if sender == nil {
		return ErrNotConfigured
	}
	if err := Validate(email); err != nil {
		return err
	}
	if err := sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// singleAddress reports whether s is exactly one bare address with no line breaks.
func singleAddress(s string) bool {
	if strings.ContainsAny(s, "\r\n") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}
