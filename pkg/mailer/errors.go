package mailer

import "errors"

var (
	ErrNoRecipient = errors.New("mailer: email must have at least one recipient")
	ErrNoSubject   = errors.New("mailer: email must have a subject")
	ErrNoContent   = errors.New("mailer: email must have html or text content")

	// ErrInvalidReplyTo means the reply-to is not a single bare address.
	ErrInvalidReplyTo = errors.New("mailer: invalid reply-to address")

	// ErrSendFailed wraps every provider failure.
	ErrSendFailed = errors.New("mailer: failed to send email")

	// ErrNotConfigured means the provider credentials or addresses are missing.
	ErrNotConfigured = errors.New("mailer: email service not configured")

	ErrUnknownProvider = errors.New("mailer: unknown provider")
)
