package postmark

import (
	"context"
	"errors"
	"testing"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neonova/storefront/pkg/mailer"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(postmark.EmailResponse), args.Error(1)
}

func testConfig() Config {
	return Config{ServerToken: "pm-server", SenderEmail: "hello@neonova.lt", SenderName: "NeoNova Website"}
}

func contactEmail() *mailer.Email {
	return &mailer.Email{
		To:          []string{"admin@example.com"},
		Subject:     "NeoNova Contact: Hi",
		HTML:        "<p>Hi</p>",
		Text:        "Hi",
		ReplyTo:     "ana@example.com",
		ReplyToName: "Ana",
		Tags:        mailer.Tags{"type": "contact"},
		Headers:     map[string]string{"X-Request-ID": "req-1"},
	}
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("maps the email", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("SendEmail", mock.Anything, mock.MatchedBy(func(e postmark.Email) bool {
			return e.From == `"NeoNova Website" <hello@neonova.lt>` &&
				e.To == "admin@example.com" &&
				e.ReplyTo == `"Ana" <ana@example.com>` &&
				e.Subject == "NeoNova Contact: Hi" &&
				e.Tag == "contact" &&
				e.HTMLBody == "<p>Hi</p>" &&
				e.TextBody == "Hi" &&
				len(e.Headers) == 1 && e.Headers[0].Name == "X-Request-ID"
		})).Return(postmark.EmailResponse{MessageID: "pm-1"}, nil).Once()

		s := &Sender{client: client, config: testConfig()}
		require.NoError(t, s.Send(context.Background(), contactEmail()))
		client.AssertExpectations(t)
	})

	t.Run("api error code", func(t *testing.T) {
		t.Parallel()
		client := &mockClient{}
		client.On("SendEmail", mock.Anything, mock.Anything).
			Return(postmark.EmailResponse{ErrorCode: 406, Message: "Inactive recipient"}, nil).Once()

		s := &Sender{client: client, config: testConfig()}
		err := s.Send(context.Background(), contactEmail())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Inactive recipient")
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		netErr := errors.New("connection reset")
		client := &mockClient{}
		client.On("SendEmail", mock.Anything, mock.Anything).
			Return(postmark.EmailResponse{}, netErr).Once()

		s := &Sender{client: client, config: testConfig()}
		require.ErrorIs(t, s.Send(context.Background(), contactEmail()), netErr)
	})
}

func TestFirstTag(t *testing.T) {
	t.Parallel()

	assert.Empty(t, firstTag(nil))
	assert.Equal(t, "quote", firstTag(mailer.Tags{"type": "quote"}))
	assert.Equal(t, "alpha", firstTag(mailer.Tags{"storefront": struct{}{}, "alpha": struct{}{}}))
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testConfig().Validate())
	assert.ErrorIs(t, Config{SenderEmail: "a@b.co"}.Validate(), mailer.ErrNotConfigured)
	assert.ErrorIs(t, Config{ServerToken: "x"}.Validate(), mailer.ErrNotConfigured)
}
