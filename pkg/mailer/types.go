package mailer

import (
	"fmt"
	"net/mail"
	"strconv"
)

// Tags are provider tags. Values are either struct{}{} (name only) or a
// scalar that the provider renders as a string.
type Tags map[string]any

// TagValue renders a tag value for providers that take string values.
// Name-only tags become "true".
func TagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Recipient formats an RFC 5322 address. Names are quoted or encoded as
// needed, so a submitter named `Ana "A" <x>` cannot inject extra addresses.
func Recipient(name, addr string) string {
	if name == "" {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}

// Email is a message ready for a provider.
type Email struct {
	Headers     map[string]string
	Tags        Tags
	Subject     string
	HTML        string
	Text        string
	From        string   // overrides the provider's configured sender
	ReplyTo     string   // bare address
	ReplyToName string   // display name paired with ReplyTo
	To          []string // at least one required
}

// ReplyToAddress returns the formatted reply-to header value, or "" when unset.
func (e *Email) ReplyToAddress() string {
	if e.ReplyTo == "" {
		return ""
	}
	return Recipient(e.ReplyToName, e.ReplyTo)
}
