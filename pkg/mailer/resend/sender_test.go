package resend

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neonova/storefront/pkg/mailer"
)

type mockEmails struct {
	mock.Mock
}

func (m *mockEmails) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	resp, _ := args.Get(0).(*resend.SendEmailResponse)
	return resp, args.Error(1)
}

func testConfig() Config {
	return Config{APIKey: "re_test", SenderEmail: "hello@neonova.lt", SenderName: "NeoNova Website"}
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("maps the email to a resend request", func(t *testing.T) {
		t.Parallel()
		api := &mockEmails{}
		api.On("SendWithContext", mock.Anything, mock.MatchedBy(func(req *resend.SendEmailRequest) bool {
			return req.From == `"NeoNova Website" <hello@neonova.lt>` &&
				req.To[0] == "admin@example.com" &&
				req.Subject == "NeoNova Quote Request from Ana" &&
				req.ReplyTo == `"Ana" <ana@example.com>` &&
				req.Html == "<p>quote</p>" &&
				req.Text == "quote" &&
				len(req.Tags) == 1 && req.Tags[0].Name == "type" && req.Tags[0].Value == "quote"
		})).Return(&resend.SendEmailResponse{Id: "em_1"}, nil).Once()

		s := &Sender{emails: api, config: testConfig()}
		err := s.Send(context.Background(), &mailer.Email{
			To:          []string{"admin@example.com"},
			Subject:     "NeoNova Quote Request from Ana",
			HTML:        "<p>quote</p>",
			Text:        "quote",
			ReplyTo:     "ana@example.com",
			ReplyToName: "Ana",
			Tags:        mailer.Tags{"type": "quote"},
		})

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("explicit from wins", func(t *testing.T) {
		t.Parallel()
		api := &mockEmails{}
		api.On("SendWithContext", mock.Anything, mock.MatchedBy(func(req *resend.SendEmailRequest) bool {
			return req.From == "other@neonova.lt" && req.ReplyTo == ""
		})).Return(&resend.SendEmailResponse{Id: "em_2"}, nil).Once()

		s := &Sender{emails: api, config: testConfig()}
		err := s.Send(context.Background(), &mailer.Email{
			To: []string{"admin@example.com"}, Subject: "s", Text: "t", From: "other@neonova.lt",
		})
		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("wraps api errors", func(t *testing.T) {
		t.Parallel()
		apiErr := errors.New("422 validation_error")
		api := &mockEmails{}
		api.On("SendWithContext", mock.Anything, mock.Anything).Return(nil, apiErr).Once()

		s := &Sender{emails: api, config: testConfig()}
		err := s.Send(context.Background(), &mailer.Email{To: []string{"a@b.co"}, Subject: "s", Text: "t"})
		require.ErrorIs(t, err, apiErr)
	})

	t.Run("empty response is an error", func(t *testing.T) {
		t.Parallel()
		api := &mockEmails{}
		api.On("SendWithContext", mock.Anything, mock.Anything).Return(&resend.SendEmailResponse{}, nil).Once()

		s := &Sender{emails: api, config: testConfig()}
		err := s.Send(context.Background(), &mailer.Email{To: []string{"a@b.co"}, Subject: "s", Text: "t"})
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testConfig().Validate())
	assert.ErrorIs(t, Config{SenderEmail: "x@y.z"}.Validate(), mailer.ErrNotConfigured)
	assert.ErrorIs(t, Config{APIKey: "k"}.Validate(), mailer.ErrNotConfigured)
}

func TestNew(t *testing.T) {
	t.Parallel()

	s := New(testConfig())
	require.NotNil(t, s)
	require.NotNil(t, s.emails)
}
