// Package locales embeds the storefront's notification strings.
package locales

import (
	"embed"

	"github.com/neonova/storefront/pkg/i18n"
)

// Namespace is the YAML file name (without extension) holding form strings.
const Namespace = "form"

// Languages offered by the site. The first entry is the default.
var Languages = []string{"en", "lt"}

//go:embed en/*.yaml lt/*.yaml
var files embed.FS

// New loads the embedded translations. defaultLang falls back to "en" when empty.
func New(defaultLang string) (*i18n.I18n, error) {
	if defaultLang == "" {
		defaultLang = Languages[0]
	}
	return i18n.New(
		i18n.WithDefaultLanguage(defaultLang),
		i18n.WithLanguages(Languages...),
		i18n.WithYAMLDir(files),
	)
}
