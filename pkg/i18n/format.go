package i18n

import (
	"math"
	"strconv"
	"strings"
)

// LocaleFormat formats numbers and prices for a locale.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
	currencySymbol    string
	symbolAfter       bool
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat returns a format with "." decimals, "," thousands and a
// leading euro sign unless overridden.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
		currencySymbol:    "€",
	}
	for _, opt := range opts {
		opt(lf)
	}
	return lf
}

func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

func WithCurrencySymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencySymbol = symbol
	}
}

// WithSymbolAfter places the currency symbol after the amount, separated by a space.
func WithSymbolAfter() LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.symbolAfter = true
	}
}

// FormatEn is the English storefront format: "€1,249.50".
func FormatEn() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatLt is the Lithuanian storefront format: "1 249,50 €".
func FormatLt() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithSymbolAfter(),
	)
}

// FormatNumber formats n with the locale's separators and at most two decimals.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	negative := n < 0
	n = math.Round(math.Abs(n)*100) / 100

	whole := int64(n)
	cents := int64(math.Round((n - float64(whole)) * 100))

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(lf.groupThousands(whole))
	if cents > 0 {
		frac := strconv.FormatInt(cents, 10)
		if cents < 10 {
			frac = "0" + frac
		}
		b.WriteString(lf.decimalSeparator)
		b.WriteString(strings.TrimRight(frac, "0"))
	}
	return b.String()
}

// FormatCurrency formats a price. Whole amounts carry no decimals, so
// catalog prices read "€349" rather than "€349.00".
func (lf *LocaleFormat) FormatCurrency(amount float64) string {
	num := lf.FormatNumber(math.Abs(amount))
	if math.Round(amount) != amount {
		num = lf.twoDecimals(math.Abs(amount))
	}

	var s string
	if lf.symbolAfter {
		s = num + " " + lf.currencySymbol
	} else {
		s = lf.currencySymbol + num
	}
	if amount < 0 {
		s = "-" + s
	}
	return s
}

func (lf *LocaleFormat) twoDecimals(n float64) string {
	n = math.Round(n*100) / 100
	whole := int64(n)
	cents := int64(math.Round((n - float64(whole)) * 100))
	frac := strconv.FormatInt(cents, 10)
	if cents < 10 {
		frac = "0" + frac
	}
	return lf.groupThousands(whole) + lf.decimalSeparator + frac
}

func (lf *LocaleFormat) groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(lf.thousandSeparator)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
