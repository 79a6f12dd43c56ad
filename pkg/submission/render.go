package submission

import (
	"html"
	"strconv"
	"strings"

	"github.com/neonova/storefront/pkg/sanitizer"
)

// Layout colors of the notification email.
const (
	contactAccent = "#FF3EA5"
	quoteAccent   = "#18D7FF"
)

// RenderOptions tunes the notification copy.
type RenderOptions struct {
	SiteName       string
	CurrencySymbol string
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.SiteName == "" {
		o.SiteName = "NeoNova"
	}
	if o.CurrencySymbol == "" {
		o.CurrencySymbol = "€"
	}
	return o
}

// Rendered is a finished notification.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Render builds the subject and bodies for a validated request.
// It has no side effects. User values are HTML-escaped in the HTML body and
// copied verbatim into the text body.
func Render(req *Request, opts RenderOptions) (*Rendered, error) {
	opts = opts.withDefaults()

	switch req.Type {
	case KindContact:
		return renderContact(req, opts), nil
	case KindQuote:
		if req.QuoteDetails == nil || req.QuoteDetails.Price == nil {
			return nil, ErrUnsupportedType
		}
		return renderQuote(req, opts), nil
	default:
		return nil, ErrUnsupportedType
	}
}

// FormatPrice prints a price without trailing zeros: 349 -> "349", 12.5 -> "12.5".
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func renderContact(req *Request, opts RenderOptions) *Rendered {
	subjectLine := req.Subject
	if subjectLine == "" {
		subjectLine = "New Message"
	}
	subjectField := req.Subject
	if subjectField == "" {
		subjectField = "N/A"
	}

	var h htmlBody
	h.open(contactAccent, "New Contact Form Submission")
	h.field("Name", req.Name)
	h.field("Email", req.Email)
	h.field("Subject", subjectField)
	h.message(req.Message)
	h.close()

	var t strings.Builder
	t.WriteString("New Contact Form Submission\n\n")
	t.WriteString("Name: " + req.Name + "\n")
	t.WriteString("Email: " + req.Email + "\n")
	t.WriteString("Subject: " + subjectField + "\n\n")
	t.WriteString("Message:\n" + req.Message + "\n")

	return &Rendered{
		Subject: headerSafe(opts.SiteName + " Contact: " + subjectLine),
		HTML:    sanitizer.EmailHTML(h.String()),
		Text:    t.String(),
	}
}

func renderQuote(req *Request, opts RenderOptions) *Rendered {
	d := req.QuoteDetails
	price := opts.CurrencySymbol + FormatPrice(*d.Price)

	var h htmlBody
	h.open(quoteAccent, "New Quote Request")
	h.field("Name", req.Name)
	h.field("Email", req.Email)
	h.section("Design Details")
	h.field("Text", d.Text)
	h.field("Color", d.Color)
	h.field("Font", d.Font)
	h.field("Size", d.Size)
	h.price(price)
	h.close()

	var t strings.Builder
	t.WriteString("New Quote Request\n\n")
	t.WriteString("Name: " + req.Name + "\n")
	t.WriteString("Email: " + req.Email + "\n\n")
	t.WriteString("Design Details:\n")
	t.WriteString("Text: " + d.Text + "\n")
	t.WriteString("Color: " + d.Color + "\n")
	t.WriteString("Font: " + d.Font + "\n")
	t.WriteString("Size: " + d.Size + "\n")
	t.WriteString("Estimated Price: " + price + "\n")

	return &Rendered{
		Subject: headerSafe(opts.SiteName + " Quote Request from " + req.Name),
		HTML:    sanitizer.EmailHTML(h.String()),
		Text:    t.String(),
	}
}

// headerSafe collapses whitespace, including line breaks, so user text
// cannot add mail headers.
func headerSafe(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// htmlBody writes the fixed notification layout. Every value goes through
// html.EscapeString before it is written.
type htmlBody struct {
	strings.Builder
}

func (b *htmlBody) open(accent, title string) {
	b.WriteString(`<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f5f5f5;">`)
	b.WriteString(`<div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">`)
	b.WriteString(`<h2 style="color: ` + accent + `; margin-bottom: 20px;">` + html.EscapeString(title) + `</h2>`)
}

func (b *htmlBody) field(label, value string) {
	b.WriteString(`<div style="margin-bottom: 15px;"><strong>` + html.EscapeString(label) + `:</strong> `)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`</div>`)
}

func (b *htmlBody) section(title string) {
	b.WriteString(`<h3 style="color: #333; margin-top: 30px; margin-bottom: 15px;">` + html.EscapeString(title) + `</h3>`)
}

func (b *htmlBody) message(msg string) {
	b.WriteString(`<div style="margin-bottom: 15px;"><strong>Message:</strong>`)
	b.WriteString(`<p style="background-color: #f9f9f9; padding: 15px; border-radius: 5px; margin-top: 10px; white-space: pre-wrap;">`)
	b.WriteString(html.EscapeString(msg))
	b.WriteString(`</p></div>`)
}

func (b *htmlBody) price(formatted string) {
	b.WriteString(`<div style="margin-top: 20px; padding: 15px; background-color: #f0f0f0; border-radius: 5px;">`)
	b.WriteString(`<strong>Estimated Price:</strong> `)
	b.WriteString(`<span style="font-size: 24px; color: ` + contactAccent + `;">` + html.EscapeString(formatted) + `</span>`)
	b.WriteString(`</div>`)
}

func (b *htmlBody) close() {
	b.WriteString(`</div></div>`)
}
