package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonova/storefront/internal"
	"github.com/neonova/storefront/middlewares"
	"github.com/neonova/storefront/pkg/i18n"
)

func i18nApp(t *testing.T, opts ...middlewares.I18nOption) *internal.App {
	t.Helper()

	svc, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithLanguages("en", "lt"),
		i18n.WithTranslations("en", "form", map[string]any{"contact": map[string]any{"form": map[string]any{"success": "Sent!"}}}),
		i18n.WithTranslations("lt", "form", map[string]any{"contact": map[string]any{"form": map[string]any{"success": "Išsiųsta!"}}}),
	)
	require.NoError(t, err)

	opts = append([]middlewares.I18nOption{middlewares.WithI18nNamespace("form")}, opts...)
	return newApp([]internal.Middleware{middlewares.I18n(svc, opts...)}, func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			lang := middlewares.GetLanguage(c)
			require.NotNil(t, middlewares.GetTranslator(c))
			return c.String(http.StatusOK, lang+"|"+c.T("contact.form.success")+"|"+c.FormatCurrency(1249.5))
		})
	})
}

func TestI18n_Resolution(t *testing.T) {
	t.Parallel()

	app := i18nApp(t)

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{"default", "/", "", "", "en|Sent!|€1,249.50"},
		{"accept language", "/", "", "lt-LT,lt;q=0.9,en;q=0.5", "lt|Išsiųsta!|1 249,50 €"},
		{"cookie beats header", "/", "en", "lt", "en|Sent!|€1,249.50"},
		{"query beats cookie", "/?lang=lt", "en", "", "lt|Išsiųsta!|1 249,50 €"},
		{"unsupported query ignored", "/?lang=de", "", "lt", "lt|Išsiųsta!|1 249,50 €"},
		{"unsupported header falls back", "/", "", "fr,de;q=0.8", "en|Sent!|€1,249.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middlewares.DefaultLanguageCookie, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := do(app, req)
			assert.Equal(t, tt.want, rec.Body.String())
			assert.Equal(t, rec.Body.String()[:2], rec.Header().Get("Content-Language"))
		})
	}
}

func TestI18n_CustomExtractor(t *testing.T) {
	t.Parallel()

	app := i18nApp(t, middlewares.WithI18nExtractor(internal.NewExtractor(internal.FromHeader("X-Lang"))))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Lang", "lt")
	assert.Equal(t, "lt|Išsiųsta!|1 249,50 €", do(app, req).Body.String())
}
