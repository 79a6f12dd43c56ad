// Package i18n holds the storefront's translated strings and locale formats.
//
// Translations are keyed by language, namespace and a dotted key path. An
// I18n instance is built once and never mutated afterwards, so it is safe to
// share between goroutines.
//
//	tr, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithLanguages("en", "lt"),
//		i18n.WithTranslations("en", "form", map[string]any{
//			"builder": map[string]any{
//				"toast": map[string]any{"quote": "Quote request sent!"},
//			},
//		}),
//	)
//
//	tr.T("lt", "form", "builder.toast.quote")
//	// lt has no entry, so the en text is returned.
//
// # Files
//
// WithYAMLDir loads {lang}/{namespace}.yaml files from any fs.FS, which is how
// the embedded locales directory is consumed:
//
//	i18n.New(i18n.WithYAMLDir(locales.FS))
//
// # Lookup order
//
// T tries the exact language, then its base language ("lt" for "lt-LT"), then
// the default language. When none has the key, the key itself is returned.
//
// # Placeholders
//
// Values are substituted with the {{name}} syntax:
//
//	tr.T("en", "form", "greeting", i18n.M{"name": "Ana"})
//
// # Translator
//
// Translator binds a language, namespace and LocaleFormat together. The I18n
// middleware stores one per request:
//
//	t := i18n.NewTranslator(tr, "lt", "form", i18n.FormatLt())
//	t.FormatCurrency(349) // "349 €"
package i18n
