package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultLang is used when WithDefaultLanguage is not given.
const DefaultLang = "en"

// M is a placeholder map passed to T.
type M map[string]any

// I18n stores flattened translations. Lookups are a single map access with a
// "lang:namespace:key.path" composite key.
type I18n struct {
	translations map[string]string
	defaultLang  string
	languages    []string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New builds an I18n instance from the given options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}
	if len(i.languages) == 0 {
		i.languages = []string{i.defaultLang}
	}

	return i, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the languages offered to clients. The default language
// always comes first; the rest are sorted.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) == 0 {
			return nil
		}

		others := make([]string, 0, len(langs))
		for _, lang := range langs {
			if lang == "" || lang == i.defaultLang || slices.Contains(others, lang) {
				continue
			}
			others = append(others, lang)
		}
		slices.Sort(others)

		i.languages = append([]string{i.defaultLang}, others...)
		return nil
	}
}

// WithTranslations adds translations for one language and namespace.
// Nested maps are flattened into dotted keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.add(lang, namespace, translations)
		return nil
	}
}

// T returns the translation for key, falling back to the base language, then
// to the default language. The key itself is returned when nothing matches.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	for _, candidate := range i.fallbackChain(lang) {
		if translation, ok := i.translations[buildKey(candidate, namespace, key)]; ok {
			return replacePlaceholders(translation, placeholders...)
		}
	}
	return key
}

// Has reports whether key resolves to a translation for lang.
func (i *I18n) Has(lang, namespace, key string) bool {
	for _, candidate := range i.fallbackChain(lang) {
		if _, ok := i.translations[buildKey(candidate, namespace, key)]; ok {
			return true
		}
	}
	return false
}

// Languages returns the configured languages, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func (i *I18n) add(lang, namespace string, translations map[string]any) {
	for key, value := range flattenTranslations(translations, "") {
		i.translations[buildKey(lang, namespace, key)] = value
	}
}

func (i *I18n) fallbackChain(lang string) []string {
	chain := []string{lang}
	if base := baseLanguage(lang); base != lang {
		chain = append(chain, base)
	}
	if !slices.Contains(chain, i.defaultLang) {
		chain = append(chain, i.defaultLang)
	}
	return chain
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// baseLanguage strips the region: "lt-LT" becomes "lt".
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
