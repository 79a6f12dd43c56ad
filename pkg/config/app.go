package config

import (
	"time"

	"github.com/neonova/storefront/pkg/logger"
	"github.com/neonova/storefront/pkg/mailer/provider"
)

// App is the storefront server configuration.
type App struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	SiteName        string        `env:"SITE_NAME" envDefault:"NeoNova"`
	AdminEmail      string        `env:"ADMIN_EMAIL"`
	CurrencySymbol  string        `env:"QUOTE_CURRENCY_SYMBOL" envDefault:"€"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	Mailer provider.Config
	Log    logger.Config
}
