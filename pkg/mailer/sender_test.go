package mailer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neonova/storefront/pkg/mailer"
	"github.com/neonova/storefront/pkg/mailer/mailertest"
)

func validEmail() *mailer.Email {
	return &mailer.Email{
		To:          []string{"admin@example.com"},
		Subject:     "NeoNova Contact: Hi",
		HTML:        "<p>Hi</p>",
		Text:        "Hi",
		ReplyTo:     "ana@example.com",
		ReplyToName: "Ana",
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	t.Run("sends once", func(t *testing.T) {
		t.Parallel()
		sender := &mailertest.MockSender{}
		sender.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
			return e.To[0] == "admin@example.com" && e.ReplyTo == "ana@example.com"
		})).Return(nil).Once()

		require.NoError(t, mailer.Dispatch(context.Background(), sender, validEmail()))
		sender.AssertExpectations(t)
		sender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("wraps provider errors", func(t *testing.T) {
		t.Parallel()
		providerErr := errors.New("smtp 550 mailbox unavailable")
		sender := &mailertest.MockSender{}
		sender.On("Send", mock.Anything, mock.Anything).Return(providerErr).Once()

		err := mailer.Dispatch(context.Background(), sender, validEmail())
		require.ErrorIs(t, err, mailer.ErrSendFailed)
		require.ErrorIs(t, err, providerErr)
		sender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("nil sender", func(t *testing.T) {
		t.Parallel()
		err := mailer.Dispatch(context.Background(), nil, validEmail())
		require.ErrorIs(t, err, mailer.ErrNotConfigured)
	})

	invalid := []struct {
		name   string
		mutate func(*mailer.Email)
		want   error
	}{
		{"no recipient", func(e *mailer.Email) { e.To = nil }, mailer.ErrNoRecipient},
		{"no subject", func(e *mailer.Email) { e.Subject = "" }, mailer.ErrNoSubject},
		{"no content", func(e *mailer.Email) { e.HTML, e.Text = "", "" }, mailer.ErrNoContent},
		{"reply-to with line break", func(e *mailer.Email) { e.ReplyTo = "eve@x.com>\r\nBcc: victim@y.com" }, mailer.ErrInvalidReplyTo},
		{"reply-to with display name", func(e *mailer.Email) { e.ReplyTo = "Eve <eve@x.com>" }, mailer.ErrInvalidReplyTo},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sender := &mailertest.MockSender{}
			email := validEmail()
			tt.mutate(email)

			err := mailer.Dispatch(context.Background(), sender, email)
			require.ErrorIs(t, err, tt.want)
			sender.AssertNotCalled(t, "Send")
		})
	}

	t.Run("sender func", func(t *testing.T) {
		t.Parallel()
		var got *mailer.Email
		sender := mailer.SenderFunc(func(_ context.Context, e *mailer.Email) error {
			got = e
			return nil
		})
		email := validEmail()
		require.NoError(t, mailer.Dispatch(context.Background(), sender, email))
		assert.Same(t, email, got)
	})
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ana@example.com", mailer.Recipient("", "ana@example.com"))
	assert.Equal(t, `"Ana Petrova" <ana@example.com>`, mailer.Recipient("Ana Petrova", "ana@example.com"))
	assert.Equal(t, `"Ana \"A\" <x@evil.com>" <ana@example.com>`, mailer.Recipient(`Ana "A" <x@evil.com>`, "ana@example.com"))
	assert.Equal(t, "=?utf-8?q?=C5=AAla?= <ula@example.lt>", mailer.Recipient("Ūla", "ula@example.lt"))
}

func TestEmailReplyToAddress(t *testing.T) {
	t.Parallel()

	e := validEmail()
	assert.Equal(t, `"Ana" <ana@example.com>`, e.ReplyToAddress())

	e.ReplyToName = ""
	assert.Equal(t, "ana@example.com", e.ReplyToAddress())

	e.ReplyTo = ""
	assert.Empty(t, e.ReplyToAddress())
}

func TestTags(t *testing.T) {
	t.Parallel()

	tags := mailer.Tags{"contact": struct{}{}, "storefront": struct{}{}}
	require.Len(t, tags, 2)
	assert.Equal(t, "true", mailer.TagValue(tags["contact"]))
	assert.Equal(t, "quote", mailer.TagValue("quote"))
	assert.Equal(t, "349", mailer.TagValue(349.0))
	assert.Equal(t, "false", mailer.TagValue(false))
	assert.Equal(t, "7", mailer.TagValue(7))
}
