package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neonova/storefront/handlers"
	"github.com/neonova/storefront/locales"
	"github.com/neonova/storefront/pkg/catalog"
	"github.com/neonova/storefront/pkg/form"
	"github.com/neonova/storefront/pkg/i18n"
	"github.com/neonova/storefront/pkg/logger"
)

type clientFlags struct {
	baseURL string
	lang    string
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.baseURL, "url", envOr("NEONOVA_URL", "http://localhost:8080"), "storefront base URL (env NEONOVA_URL)")
	cmd.PersistentFlags().StringVar(&f.lang, "lang", envOr("NEONOVA_LANG", i18n.DefaultLang), "notification language: en|lt")
}

func (f *clientFlags) form() (*form.Form, error) {
	svc, err := locales.New("")
	if err != nil {
		return nil, err
	}
	format := i18n.FormatEn()
	if f.lang == "lt" {
		format = i18n.FormatLt()
	}
	endpoint := strings.TrimRight(f.baseURL, "/") + handlers.SendEmailPath
	return form.New(endpoint,
		form.WithHTTPClient(http.DefaultClient),
		form.WithTranslator(i18n.NewTranslator(svc, f.lang, locales.Namespace, format)),
		form.WithLogger(logger.NewWithWriter(os.Stderr, slog.LevelWarn)),
	), nil
}

func newSubmitCmd() *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send a contact message or quote request through the relay",
	}
	flags.register(cmd)

	var contact form.ContactInput
	contactCmd := &cobra.Command{
		Use:   "contact",
		Short: "Submit the contact form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := flags.form()
			if err != nil {
				return err
			}
			return report(cmd, f.SubmitContact(cmd.Context(), contact))
		},
	}
	contactCmd.Flags().StringVar(&contact.Name, "name", "", "your name (required)")
	contactCmd.Flags().StringVar(&contact.Email, "email", "", "your email (required)")
	contactCmd.Flags().StringVar(&contact.Subject, "subject", "", "message subject")
	contactCmd.Flags().StringVar(&contact.Message, "message", "", "message body")

	quote := form.QuoteInput{Selection: catalog.DefaultSelection()}
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Request a quote for a sign design",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := flags.form()
			if err != nil {
				return err
			}
			return report(cmd, f.SubmitQuote(cmd.Context(), quote))
		},
	}
	quoteCmd.Flags().StringVar(&quote.Email, "email", "", "email to send the quote to (required)")
	quoteCmd.Flags().StringVar(&quote.Selection.Text, "text", quote.Selection.Text, "sign text")
	quoteCmd.Flags().StringVar(&quote.Selection.Color, "color", quote.Selection.Color, "color key")
	quoteCmd.Flags().StringVar(&quote.Selection.Font, "font", quote.Selection.Font, "font key")
	quoteCmd.Flags().StringVar(&quote.Selection.Size, "size", quote.Selection.Size, "size key: sm|md|lg|xl")

	cmd.AddCommand(contactCmd, quoteCmd)
	return cmd
}

func report(cmd *cobra.Command, res form.Result) error {
	if res.Success {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	}
	if res.Message == "" {
		return res.Err
	}
	return fmt.Errorf("%s: %w", res.Message, res.Err)
}

func newCatalogCmd() *cobra.Command {
	var (
		flags   clientFlags
		offline bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the builder options and prices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if offline {
				return enc.Encode(map[string]any{
					"colors":        catalog.Colors(),
					"fonts":         catalog.Fonts(),
					"sizes":         catalog.Sizes(),
					"defaults":      catalog.DefaultSelection(),
					"maxTextLength": catalog.MaxTextLength,
				})
			}

			u, err := url.Parse(strings.TrimRight(flags.baseURL, "/") + handlers.CatalogPath)
			if err != nil {
				return fmt.Errorf("catalog url: %w", err)
			}
			u.RawQuery = url.Values{"lang": {flags.lang}}.Encode()

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, u.String(), nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("fetch catalog: %w", err)
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("fetch catalog: status %d", resp.StatusCode)
			}

			var out handlers.CatalogResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				return fmt.Errorf("decode catalog: %w", err)
			}
			return enc.Encode(out)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&offline, "offline", false, "print the built-in catalog without calling the server")
	return cmd
}
