// Package submission models a storefront form submission and turns it into
// the notification email sent to the shop owner.
package submission

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Kind is the submission type.
type Kind string

const (
	KindContact Kind = "contact"
	KindQuote   Kind = "quote"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindContact || k == KindQuote
}

var (
	// ErrMissingFields means name, email or type is absent or blank, or the
	// email is not a single well-formed address.
	ErrMissingFields = errors.New("submission: missing required fields")

	// ErrUnsupportedType means the type is unknown, or a quote arrived
	// without complete design details.
	ErrUnsupportedType = errors.New("submission: unsupported email type")
)

// Request is the JSON body posted by the storefront forms.
type Request struct {
	Type         Kind          `json:"type" validate:"required"`
	Name         string        `json:"name" validate:"nonblank"`
	Email        string        `json:"email" validate:"nonblank,email"`
	Subject      string        `json:"subject,omitempty"`
	Message      string        `json:"message,omitempty"`
	QuoteDetails *QuoteDetails `json:"quoteDetails,omitempty" validate:"-"`
}

// QuoteDetails is the builder configuration attached to a quote.
// Price is whatever the client computed; it is echoed, never trusted.
type QuoteDetails struct {
	Text  string   `json:"text" validate:"nonblank"`
	Color string   `json:"color" validate:"nonblank"`
	Font  string   `json:"font" validate:"nonblank"`
	Size  string   `json:"size" validate:"nonblank"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// Validate checks presence first, then the type, then quote completeness.
// It returns nil, ErrMissingFields or ErrUnsupportedType.
func (r *Request) Validate() error {
	v := structValidator()

	if err := v.Struct(r); err != nil {
		return errors.Join(ErrMissingFields, err)
	}

	if !r.Type.Valid() {
		return ErrUnsupportedType
	}
	if r.Type == KindContact {
		return nil
	}

	if r.QuoteDetails == nil {
		return ErrUnsupportedType
	}
	if err := v.Struct(r.QuoteDetails); err != nil {
		return errors.Join(ErrUnsupportedType, err)
	}
	return nil
}

// ReplyToName is the display name used on the reply-to address: the trimmed
// name, or the email when the name is blank.
func (r *Request) ReplyToName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return strings.TrimSpace(r.Email)
}

// ReplyToEmail is the submitter's trimmed address.
func (r *Request) ReplyToEmail() string {
	return strings.TrimSpace(r.Email)
}
