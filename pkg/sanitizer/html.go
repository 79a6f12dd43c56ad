// Package sanitizer cleans HTML before it leaves the storefront.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Only the elements and inline styles the notification layout uses.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowElements("div", "h2", "h3", "p", "strong", "br", "span", "hr")
		emailPolicy.AllowStyles(
			"font-family", "font-size", "max-width", "margin", "margin-top", "margin-bottom", "padding",
			"color", "background-color", "border-radius", "white-space",
		).Globally()
	})
}

// EmailHTML passes a rendered notification body through the email policy.
// Scripts, event handlers, links and images are removed; text content is kept.
func EmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}
