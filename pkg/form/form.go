// Package form is the client side of the storefront submission flow.
//
// A Form validates contact and quote input locally, posts it to the relay
// endpoint and reports a localized notification message plus the fields the
// caller should clear:
//
//	f := form.New("https://neonova.lt/api/send-email", form.WithTranslator(tr))
//	res := f.SubmitQuote(ctx, form.QuoteInput{Email: "ana@example.com", Selection: sel})
//	if res.Success {
//		// clear res.Cleared, keep the builder selection
//	}
//
// One Form allows a single submission at a time. A call made while another is
// in flight returns ErrSubmissionInFlight without touching the network.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/neonova/storefront/pkg/catalog"
	"github.com/neonova/storefront/pkg/i18n"
	"github.com/neonova/storefront/pkg/logger"
	"github.com/neonova/storefront/pkg/submission"
)

// Notification keys looked up through the Translator.
const (
	KeyContactSuccess  = "contact.form.success"
	KeyContactRequired = "contact.toast.required"
	KeyContactError    = "contact.toast.error"
	KeyQuoteSuccess    = "builder.toast.quote"
	KeyQuoteEmail      = "builder.toast.emailError"
	KeyQuoteError      = "builder.toast.error"
)

var (
	ErrSubmissionInFlight = errors.New("form: submission already in flight")
	ErrInvalidInput       = errors.New("form: invalid input")
	ErrRequestFailed      = errors.New("form: request failed")
)

// Field names a form input the caller should reset.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Translator resolves notification keys. *i18n.Translator satisfies it.
type Translator interface {
	T(key string, placeholders ...i18n.M) string
}

type keyTranslator struct{}

func (keyTranslator) T(key string, _ ...i18n.M) string { return key }

// ContactInput is the contact page form.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// QuoteInput is the builder's quote form: an email plus the current design.
type QuoteInput struct {
	Email     string
	Selection catalog.Selection
}

// Result is the outcome of one submit.
type Result struct {
	Err     error   // nil on success
	Message string  // localized notification, empty for ErrSubmissionInFlight
	Cleared []Field // fields to reset; empty keeps the user's input for retry
	Success bool
}

// StatusError is a non-2xx relay response.
type StatusError struct {
	Message string // the relay's {"error": ...} text, if any
	Code    int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relay responded %d", e.Code)
	}
	return fmt.Sprintf("relay responded %d: %s", e.Code, e.Message)
}

// Form submits to one relay endpoint.
type Form struct {
	client     *http.Client
	translator Translator
	logger     *slog.Logger
	validate   *validator.Validate
	endpoint   string
	inFlight   atomic.Bool
}

// Option configures a Form.
type Option func(*Form)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) {
		if c != nil {
			f.client = c
		}
	}
}

// WithTranslator sets the notification translator. Without one the keys
// themselves are returned.
func WithTranslator(t Translator) Option {
	return func(f *Form) {
		if t != nil {
			f.translator = t
		}
	}
}

// WithLogger sets the logger used for failed submissions.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// New returns a Form posting to endpoint.
func New(endpoint string, opts ...Option) *Form {
	f := &Form{
		client:     http.DefaultClient,
		translator: keyTranslator{},
		logger:     logger.NewNope(),
		validate:   validator.New(),
		endpoint:   endpoint,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SubmitContact validates and posts the contact form. Name and email are
// required. Success clears every field; failure keeps them.
func (f *Form) SubmitContact(ctx context.Context, in ContactInput) Result {
	if !f.inFlight.CompareAndSwap(false, true) {
		return Result{Err: ErrSubmissionInFlight}
	}
	defer f.inFlight.Store(false)

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return Result{Err: ErrInvalidInput, Message: f.translator.T(KeyContactRequired)}
	}

	err := f.post(ctx, &submission.Request{
		Type:    submission.KindContact,
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	})
	if err != nil {
		return Result{Err: err, Message: f.translator.T(KeyContactError)}
	}

	return Result{
		Success: true,
		Message: f.translator.T(KeyContactSuccess),
		Cleared: []Field{FieldName, FieldEmail, FieldSubject, FieldMessage},
	}
}

// SubmitQuote validates the email and posts the builder selection with its
// listed price. Success clears only the email; the design stays.
func (f *Form) SubmitQuote(ctx context.Context, in QuoteInput) Result {
	if !f.inFlight.CompareAndSwap(false, true) {
		return Result{Err: ErrSubmissionInFlight}
	}
	defer f.inFlight.Store(false)

	email := strings.TrimSpace(in.Email)
	if err := f.validate.Var(email, "required,email"); err != nil {
		return Result{Err: errors.Join(ErrInvalidInput, err), Message: f.translator.T(KeyQuoteEmail)}
	}

	sel := in.Selection.Normalize()
	price := sel.Price()
	err := f.post(ctx, &submission.Request{
		Type:  submission.KindQuote,
		Name:  NameFromEmail(email),
		Email: email,
		QuoteDetails: &submission.QuoteDetails{
			Text:  sel.Text,
			Color: sel.Color,
			Font:  sel.Font,
			Size:  sel.Size,
			Price: &price,
		},
	})
	if err != nil {
		return Result{Err: err, Message: f.translator.T(KeyQuoteError)}
	}

	return Result{
		Success: true,
		Message: f.translator.T(KeyQuoteSuccess),
		Cleared: []Field{FieldEmail},
	}
}

// NameFromEmail is the local part of addr, or addr itself without an "@".
func NameFromEmail(addr string) string {
	local, _, found := strings.Cut(addr, "@")
	if !found || local == "" {
		return addr
	}
	return local
}

func (f *Form) post(ctx context.Context, req *submission.Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		f.logger.ErrorContext(ctx, "submission request failed",
			slog.String("type", string(req.Type)),
			slog.String("error", err.Error()),
		)
		return errors.Join(ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	statusErr := &StatusError{Code: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	if json.NewDecoder(io.LimitReader(resp.Body, 4<<10)).Decode(&payload) == nil {
		statusErr.Message = payload.Error
	}
	f.logger.ErrorContext(ctx, "submission rejected",
		slog.String("type", string(req.Type)),
		slog.Int("status", statusErr.Code),
		slog.String("error", statusErr.Message),
	)
	return errors.Join(ErrRequestFailed, statusErr)
}
