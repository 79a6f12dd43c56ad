package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neonova/storefront"
	"github.com/neonova/storefront/handlers"
	"github.com/neonova/storefront/middlewares"
	"github.com/neonova/storefront/pkg/logger"
	"github.com/neonova/storefront/pkg/mailer"
	"github.com/neonova/storefront/pkg/mailer/mailertest"
	"github.com/neonova/storefront/pkg/metrics"
)

const adminEmail = "owner@neonova.lt"

var relayCfg = handlers.RelayConfig{AdminEmail: adminEmail}

func newRelay(t *testing.T, sender mailer.Sender, cfg handlers.RelayConfig, opts ...storefront.Option) *storefront.App {
	t.Helper()
	opts = append(opts,
		storefront.WithMiddleware(middlewares.RequestID()),
		storefront.WithHandlers(handlers.NewSendEmail(cfg, sender)),
	)
	return storefront.New(opts...)
}

func post(app http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, handlers.SendEmailPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func okSender() *mailertest.MockSender {
	m := &mailertest.MockSender{}
	m.On("Send", mock.Anything, mock.Anything).Return(nil)
	return m
}

func TestSendEmail_Contact(t *testing.T) {
	t.Parallel()

	sender := okSender()
	app := newRelay(t, sender, relayCfg)

	rec := post(app, `{"type":"contact","name":"Ana","email":"ana@example.com","subject":"Hello","message":"Hi there"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Email sent successfully"}`, rec.Body.String())

	sender.AssertNumberOfCalls(t, "Send", 1)
	sent := sender.Sent()
	require.Len(t, sent, 1)
	email := sent[0]
	assert.Equal(t, []string{adminEmail}, email.To)
	assert.Equal(t, "NeoNova Contact: Hello", email.Subject)
	assert.Equal(t, "ana@example.com", email.ReplyTo)
	assert.Equal(t, "Ana", email.ReplyToName)
	assert.Contains(t, email.Text, "Message:\nHi there")
	assert.Equal(t, "contact", email.Tags["type"])
	assert.Equal(t, rec.Header().Get("X-Request-ID"), email.Headers["X-Request-ID"])
}

func TestSendEmail_Quote(t *testing.T) {
	t.Parallel()

	sender := okSender()
	app := newRelay(t, sender, relayCfg)

	rec := post(app, `{"type":"quote","name":"ana","email":"ana@example.com",
		"quoteDetails":{"text":"Dream Big","color":"pink","font":"cursive","size":"lg","price":349}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "NeoNova Quote Request from ana", sent[0].Subject)
	assert.Contains(t, sent[0].Text, "Estimated Price: €349")
	assert.Contains(t, sent[0].HTML, "Dream Big")
}

func TestSendEmail_EscapesHTML(t *testing.T) {
	t.Parallel()

	sender := okSender()
	app := newRelay(t, sender, relayCfg)

	rec := post(app, `{"type":"contact","name":"<script>alert(1)</script>","email":"x@example.com","message":"<b>hi</b>"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	email := sender.Sent()[0]
	assert.NotContains(t, email.HTML, "<script>")
	assert.NotContains(t, email.HTML, "<b>hi</b>")
	assert.Contains(t, email.Text, "<b>hi</b>")
}

func TestSendEmail_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"type":"contact","email":"ana@example.com"}`, handlers.MsgMissingFields},
		{"blank email", `{"type":"contact","name":"Ana","email":"   "}`, handlers.MsgMissingFields},
		{"missing type", `{"name":"Ana","email":"ana@example.com"}`, handlers.MsgMissingFields},
		{"malformed json", `{"type":"contact",`, handlers.MsgMissingFields},
		{"empty body", ``, handlers.MsgMissingFields},
		{"malformed email", `{"type":"contact","name":"Ana","email":"ana"}`, handlers.MsgMissingFields},
		{"header injection in email", `{"type":"contact","name":"Eve","email":"eve@x.com>\r\nBcc: victim@y.com\r\nX-Evil: <a@b.c","message":"hi"}`, handlers.MsgMissingFields},
		{"unknown type", `{"type":"newsletter","name":"Ana","email":"ana@example.com"}`, handlers.MsgUnsupportedType},
		{"quote without details", `{"type":"quote","name":"Ana","email":"ana@example.com"}`, handlers.MsgUnsupportedType},
		{"quote without price", `{"type":"quote","name":"Ana","email":"ana@example.com",
			"quoteDetails":{"text":"Hi","color":"pink","font":"cursive","size":"lg"}}`, handlers.MsgUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := okSender()
			app := newRelay(t, sender, relayCfg)

			first := post(app, tt.body)
			assert.Equal(t, http.StatusBadRequest, first.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, first.Body.String())

			// a repeated failure answers the same way
			second := post(app, tt.body)
			assert.Equal(t, first.Code, second.Code)
			assert.Equal(t, first.Body.String(), second.Body.String())

			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestSendEmail_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	sender := okSender()
	app := newRelay(t, sender, relayCfg)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(method, handlers.SendEmailPath, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
	}
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendEmail_NotConfigured(t *testing.T) {
	t.Parallel()

	valid := `{"type":"contact","name":"Ana","email":"ana@example.com"}`

	t.Run("nil sender", func(t *testing.T) {
		t.Parallel()
		rec := post(newRelay(t, nil, relayCfg), valid)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Email service not configured"}`, rec.Body.String())
	})

	t.Run("no admin email", func(t *testing.T) {
		t.Parallel()
		sender := okSender()
		rec := post(newRelay(t, sender, handlers.RelayConfig{}), valid)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Email service not configured"}`, rec.Body.String())
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("validation still runs first", func(t *testing.T) {
		t.Parallel()
		rec := post(newRelay(t, nil, relayCfg), `{"type":"contact"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("configured reports reason", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, handlers.NewSendEmail(relayCfg, nil).Configured(), mailer.ErrNotConfigured)
		assert.NoError(t, handlers.NewSendEmail(relayCfg, okSender()).Configured())
	})
}

func TestSendEmail_ProviderFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := &mailertest.MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("resend: 422 invalid api key"))

	app := newRelay(t, sender, relayCfg,
		storefront.WithCustomLogger(logger.NewWithWriter(&buf, slog.LevelInfo, middlewares.RequestIDExtractor())))

	rec := post(app, `{"type":"contact","name":"Ana","email":"ana@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "api key")
	sender.AssertNumberOfCalls(t, "Send", 1)

	assert.Contains(t, buf.String(), "invalid api key")
	assert.Contains(t, buf.String(), rec.Header().Get("X-Request-ID"))
}

func TestSendEmail_PanicInProvider(t *testing.T) {
	t.Parallel()

	sender := mailer.SenderFunc(func(context.Context, *mailer.Email) error { panic("provider bug") })
	rec := post(newRelay(t, sender, relayCfg), `{"type":"contact","name":"Ana","email":"ana@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send email"}`, rec.Body.String())
}

func TestSendEmail_Metrics(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	app := storefront.New(
		storefront.WithMetrics(m, ""),
		storefront.WithHandlers(handlers.NewSendEmail(relayCfg, okSender(), handlers.WithSubmissionMetrics(m))),
	)

	post(app, `{"type":"contact","name":"Ana","email":"ana@example.com"}`)
	post(app, `{"type":"quote","name":"Ana","email":"ana@example.com"}`)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `storefront_submissions_total{outcome="sent",type="contact"} 1`)
	assert.Contains(t, rec.Body.String(), `storefront_submissions_total{outcome="invalid",type="quote"} 1`)
}
