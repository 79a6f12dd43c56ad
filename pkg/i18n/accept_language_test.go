package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neonova/storefront/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"en", "lt"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact", "lt", "lt"},
		{"region matches base", "lt-LT", "lt"},
		{"quality ordering", "de;q=0.9,lt;q=0.8,en;q=0.7", "lt"},
		{"case insensitive", "LT", "lt"},
		{"wildcard ignored", "*", "en"},
		{"zero quality ignored", "lt;q=0,en;q=0.1", "en"},
		{"no match", "fr,de", "en"},
		{"browser style", "lt-LT,lt;q=0.9,en-US;q=0.8,en;q=0.7", "lt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, available))
		})
	}

	t.Run("no available languages", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, i18n.ParseAcceptLanguage("en", nil))
	})

	t.Run("oversized header is truncated", func(t *testing.T) {
		t.Parallel()
		header := strings.Repeat("xx,", 3000) + "lt"
		assert.Equal(t, "en", i18n.ParseAcceptLanguage(header, available))
	})
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Thanks, Ana!", i18n.ReplacePlaceholders("Thanks, {{name}}!", i18n.M{"name": "Ana"}))
	assert.Equal(t, "{{size}} costs 349", i18n.ReplacePlaceholders("{{size}} costs {{price}}", i18n.M{"price": 349}))
	assert.Equal(t, "plain", i18n.ReplacePlaceholders("plain", nil))
}

func TestMatchLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"en", "lt"}

	got, ok := i18n.MatchLanguage(" LT ", available)
	assert.True(t, ok)
	assert.Equal(t, "lt", got)

	got, ok = i18n.MatchLanguage("en-GB", available)
	assert.True(t, ok)
	assert.Equal(t, "en", got)

	_, ok = i18n.MatchLanguage("de", available)
	assert.False(t, ok)

	_, ok = i18n.MatchLanguage("", available)
	assert.False(t, ok)
}
