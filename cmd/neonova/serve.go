package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/neonova/storefront"
	"github.com/neonova/storefront/handlers"
	"github.com/neonova/storefront/locales"
	"github.com/neonova/storefront/middlewares"
	"github.com/neonova/storefront/pkg/config"
	"github.com/neonova/storefront/pkg/health"
	"github.com/neonova/storefront/pkg/logger"
	"github.com/neonova/storefront/pkg/mailer"
	"github.com/neonova/storefront/pkg/mailer/provider"
	"github.com/neonova/storefront/pkg/metrics"
)

func newServeCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.App
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if address != "" {
				cfg.Address = address
			}

			log := logger.New(cfg.Log, middlewares.RequestIDExtractor()).With("component", "storefront")

			app, err := newServer(cfg, log)
			if err != nil {
				return err
			}

			return app.Run(
				storefront.Address(cfg.Address),
				storefront.WithContext(cmd.Context()),
				storefront.ShutdownTimeout(cfg.ShutdownTimeout),
				storefront.ShutdownHook(func(context.Context) error {
					sentry.Flush(2 * time.Second)
					return nil
				}),
			)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address, overrides ADDRESS")
	return cmd
}

// newServer wires the app from configuration. A mail provider without
// credentials is not fatal: the relay then answers "Email service not
// configured" and readiness reports the mailer as unhealthy.
func newServer(cfg config.App, log *slog.Logger) (*storefront.App, error) {
	sender, err := provider.New(cfg.Mailer)
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		log.Warn("mail provider not configured, submissions will fail",
			slog.String("provider", cfg.Mailer.Provider),
			slog.String("error", err.Error()),
		)
		sender = nil
	case err != nil:
		return nil, err
	}

	translations, err := locales.New(cfg.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	relay := handlers.NewSendEmail(handlers.RelayConfig{
		AdminEmail:     cfg.AdminEmail,
		SiteName:       cfg.SiteName,
		CurrencySymbol: cfg.CurrencySymbol,
	}, sender, handlers.WithSubmissionMetrics(m))

	return storefront.New(
		storefront.WithCustomLogger(log),
		storefront.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.AllowedOrigins...)),
			middlewares.Metrics(m),
			middlewares.I18n(translations, middlewares.WithI18nNamespace(locales.Namespace)),
		),
		storefront.WithHealthChecks(
			storefront.WithReadinessCheck("mailer", health.Static(relay.Configured())),
		),
		storefront.WithMetrics(m, ""),
		storefront.WithHandlers(
			relay,
			handlers.NewCatalog(),
		),
	), nil
}
