// whoxy is a command-line client for the Whoxy WHOIS history and reverse-WHOIS API
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gnomegl/whoxy/internal/config"
	"github.com/gnomegl/whoxy/internal/output"
	"github.com/gnomegl/whoxy/internal/whoxy"
	"github.com/gnomegl/whoxy/pkg/models"
)

var (
	// CLI flags
	apiKey  string
	page    int
	mode    string
	rawJSON bool
	quiet   bool
	timeout time.Duration
	verbose bool

	// Version information (set during build)
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "whoxy",
	Short:   "Command-line client for the Whoxy domain intelligence API",
	Version: version,
	Long: `whoxy queries the Whoxy WHOIS history and reverse-WHOIS API and renders
the results as human-readable text or raw JSON.

An API key is required. It is resolved from --key, the WHOXY_API_KEY
environment variable, or ~/.config/whoxy/key, in that order.`,
	Example: `  # Full WHOIS history of a domain
  whoxy history example.com

  # Reverse WHOIS by registrant attributes
  whoxy name "John Doe"
  whoxy email john@example.com
  whoxy company "Example LLC" --page 2

  # Keyword search, domain names only
  whoxy keyword example --mode domains

  # Raw JSON output
  whoxy history example.com --json

  # Remaining API credits
  whoxy balance`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(verbose)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <domain>",
	Short: "Fetch the full WHOIS history of a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(models.KindHistory, args[0])
	},
}

var nameCmd = &cobra.Command{
	Use:   "name <registrant name>",
	Short: "Reverse WHOIS search by registrant name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(models.KindName, args[0])
	},
}

var emailCmd = &cobra.Command{
	Use:   "email <email address>",
	Short: "Reverse WHOIS search by registrant email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(models.KindEmail, args[0])
	},
}

var companyCmd = &cobra.Command{
	Use:   "company <company name>",
	Short: "Reverse WHOIS search by registrant company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(models.KindCompany, args[0])
	},
}

var keywordCmd = &cobra.Command{
	Use:   "keyword <keyword>",
	Short: "Reverse WHOIS search by domain name keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(models.KindKeyword, args[0])
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show remaining API credits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBalance()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiKey, "key", "k", "", "Whoxy API key (overrides WHOXY_API_KEY and the key file)")
	rootCmd.PersistentFlags().BoolVarP(&rawJSON, "json", "j", false, "Emit the raw JSON response instead of formatted text")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Disable ANSI styling")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 30*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{nameCmd, emailCmd, companyCmd, keywordCmd} {
		cmd.Flags().IntVarP(&page, "page", "p", 1, "Result page to fetch")
		cmd.Flags().StringVarP(&mode, "mode", "m", "normal", "Output mode: normal, mini, micro, or domains")
	}

	rootCmd.AddCommand(historyCmd, nameCmd, emailCmd, companyCmd, keywordCmd, balanceCmd)
}

// configureLogging sends zerolog console output to stderr so that stdout
// carries only formatted results.
func configureLogging(verbose bool) {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// newRequest assembles and validates the search request from the CLI flags.
// Validation failures happen here, before any credential lookup or network
// call.
func newRequest(kind models.SearchKind, value string) (models.SearchRequest, error) {
	m, ok := models.ParseMode(mode)
	if !ok {
		return models.SearchRequest{}, &whoxy.ConfigError{
			Reason: fmt.Sprintf("unknown mode %q (valid: normal, mini, micro, domains)", mode),
		}
	}
	p := page
	if p < 1 {
		p = 1
	}
	req := models.SearchRequest{Kind: kind, Value: value, Page: p, Mode: m}
	if err := whoxy.ValidateRequest(req); err != nil {
		return models.SearchRequest{}, err
	}
	return req, nil
}

func runSearch(kind models.SearchKind, value string) error {
	req, err := newRequest(kind, value)
	if err != nil {
		return err
	}

	settings, client, err := buildClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.Timeout)
	defer cancel()

	resp, raw, err := client.Search(ctx, req)
	if err != nil {
		return err
	}

	if settings.RawJSON {
		return output.WriteRawJSON(os.Stdout, raw)
	}
	formatter := output.NewTextFormatter(output.NewStyle(settings.Quiet))
	return formatter.Write(os.Stdout, resp, req)
}

func runBalance() error {
	settings, client, err := buildClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.Timeout)
	defer cancel()

	resp, raw, err := client.Balance(ctx)
	if err != nil {
		return err
	}

	if settings.RawJSON {
		return output.WriteRawJSON(os.Stdout, raw)
	}
	formatter := output.NewTextFormatter(output.NewStyle(settings.Quiet))
	return formatter.WriteBalance(os.Stdout, resp)
}

// buildClient resolves the API key and constructs the settings and client
// shared by every subcommand.
func buildClient() (*config.Settings, *whoxy.Client, error) {
	key, err := config.ResolveAPIKey(apiKey)
	if err != nil {
		return nil, nil, err
	}

	settings := &config.Settings{
		APIKey:  key,
		Timeout: timeout,
		RawJSON: rawJSON,
		Quiet:   quiet,
	}
	client := whoxy.NewClient(whoxy.Config{
		APIKey:  key,
		Timeout: settings.Timeout,
	})
	return settings, client, nil
}
