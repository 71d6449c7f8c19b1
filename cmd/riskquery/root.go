package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/trip-risk-dashboard/internal/adapter/riskapi"
	"github.com/couchcryptid/trip-risk-dashboard/internal/observability"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

var (
	apiBaseURL string
	outputType string
	apiTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "riskquery",
	Short: "Query the trip risk analytics API from the terminal",
	Long: `riskquery talks to the same analytics API the dashboard consumes and
prints the formatted panels: top risk zones for an hour, per-zone detail,
the overview figures, and driver risk reports.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", sharedcfg.EnvOrDefault("RISK_API_BASE_URL", "http://localhost:8000"), "analytics API base URL")
	rootCmd.PersistentFlags().StringVarP(&outputType, "output", "o", "table", "output format: table or json")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(topZonesCmd)
	rootCmd.AddCommand(zoneCmd)
	rootCmd.AddCommand(driverCmd)
}

func newClient() *riskapi.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return riskapi.NewClient(apiBaseURL, apiTimeout, logger, observability.NewMetrics())
}
