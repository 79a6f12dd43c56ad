package i18n

// Translator fixes the language and namespace so callers only pass keys.
type Translator struct {
	i18n      *I18n
	format    *LocaleFormat
	language  string
	namespace string
}

// NewTranslator binds i18n to a language and namespace. An empty language
// means the default language; a nil format means FormatEn.
func NewTranslator(i18n *I18n, language, namespace string, format *LocaleFormat) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	if format == nil {
		format = FormatEn()
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
		format:    format,
	}
}

func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

// TOr returns fallback when key has no translation in any language.
func (t *Translator) TOr(key, fallback string, placeholders ...M) string {
	if !t.i18n.Has(t.language, t.namespace, key) {
		return fallback
	}
	return t.T(key, placeholders...)
}

func (t *Translator) FormatCurrency(amount float64) string {
	return t.format.FormatCurrency(amount)
}

func (t *Translator) Language() string {
	return t.language
}

func (t *Translator) Namespace() string {
	return t.namespace
}
