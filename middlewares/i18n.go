package middlewares

import (
	"github.com/neonova/storefront/internal"
	"github.com/neonova/storefront/pkg/i18n"
)

// DefaultLanguageCookie is the cookie the site uses to remember the language switch.
const DefaultLanguageCookie = "lang"

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	FormatMap     map[string]*i18n.LocaleFormat
	DefaultFormat *i18n.LocaleFormat
	Namespace     string
	Extractor     internal.Extractor
	extractorSet  bool
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nNamespace sets the default namespace for the context translator.
func WithI18nNamespace(ns string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Namespace = ns
	}
}

// WithI18nExtractor sets a custom language extractor chain.
func WithI18nExtractor(ext internal.Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithI18nFormatMap sets the language-to-format mapping.
func WithI18nFormatMap(m map[string]*i18n.LocaleFormat) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.FormatMap = m
	}
}

// FromAcceptLanguage returns an ExtractorSource that parses the Accept-Language
// header and matches against the available languages.
func FromAcceptLanguage(available []string) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		header := c.Header("Accept-Language")
		if header == "" {
			return "", false
		}
		return i18n.ParseAcceptLanguage(header, available), true
	}
}

// fromSupported keeps a source's value only when it names an available language.
func fromSupported(src internal.ExtractorSource, svc *i18n.I18n) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		v, ok := src(c)
		if !ok {
			return "", false
		}
		return i18n.MatchLanguage(v, svc.Languages())
	}
}

// I18n returns middleware that resolves the visitor's language, creates a
// Translator, and stores both in the request context.
//
// Default resolution order: ?lang= query, "lang" cookie, Accept-Language,
// then the default language. Query and cookie values outside the offered
// languages are ignored.
func I18n(svc *i18n.I18n, opts ...I18nOption) internal.Middleware {
	cfg := &I18nConfig{
		FormatMap: map[string]*i18n.LocaleFormat{
			"en": i18n.FormatEn(),
			"lt": i18n.FormatLt(),
		},
		DefaultFormat: i18n.FormatEn(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			fromSupported(internal.FromQuery("lang"), svc),
			fromSupported(internal.FromCookie(DefaultLanguageCookie), svc),
			FromAcceptLanguage(svc.Languages()),
		)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			lang, ok := cfg.Extractor.Extract(c)
			if !ok || lang == "" {
				lang = svc.DefaultLanguage()
			}

			format := cfg.DefaultFormat
			if f, exists := cfg.FormatMap[lang]; exists && f != nil {
				format = f
			}

			tr := i18n.NewTranslator(svc, lang, cfg.Namespace, format)

			c.Set(internal.TranslatorKey{}, tr)
			c.Set(internal.LanguageKey{}, lang)
			c.SetHeader("Content-Language", lang)

			return next(c)
		}
	}
}

// GetTranslator extracts the Translator from the context.
// Returns nil if the I18n middleware is not used.
func GetTranslator(c internal.Context) *i18n.Translator {
	if v, ok := c.Get(internal.TranslatorKey{}).(*i18n.Translator); ok {
		return v
	}
	return nil
}

// GetLanguage extracts the resolved language from the context.
// Returns an empty string if the I18n middleware is not used.
func GetLanguage(c internal.Context) string {
	if v, ok := c.Get(internal.LanguageKey{}).(string); ok {
		return v
	}
	return ""
}
