package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mycelian/shopsearch/client"
	"github.com/mycelian/shopsearch/internal/config"
	"github.com/mycelian/shopsearch/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const serviceName = "shopsearch"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

// rootOptions carries the global flags and the resolved configuration.
type rootOptions struct {
	url         string
	logFormat   string
	metricsFile string
	debug       bool
	timeout     time.Duration

	cfg *config.Config
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
// Running it without a sub-command performs the default search.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Query the product search service",
		Long:          "Posts a search to the product search service and prints the JSON reply.\nWithout a sub-command the configured default query and platforms are used.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, searchParams{
				req: client.SearchRequest{
					Query:      opts.cfg.Query,
					Platforms:  opts.cfg.Platforms,
					MaxResults: opts.cfg.MaxResults,
				},
				output: opts.cfg.Output,
				wait:   opts.cfg.Wait,
			})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.url, "url", client.DefaultBaseURL, "Base URL of the search service (env SHOPSEARCH_URL)")
	pf.BoolVarP(&opts.debug, "debug", "d", false, "Enable verbose debug output including HTTP dumps")
	pf.StringVar(&opts.logFormat, "log-format", config.LogConsole, "Diagnostic log format: console|json")
	pf.DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout per request; 0 waits indefinitely")
	pf.StringVar(&opts.metricsFile, "metrics-file", "", "Write client metrics in Prometheus textfile format to this path")

	// Sub-commands
	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newHealthCmd(opts))
	rootCmd.AddCommand(newMCPCmd(opts))

	return rootCmd
}

// load reads the environment, then lets explicitly set flags override it.
// Nothing is logged until the configured logger is installed.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = o.url
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	log.Logger = logger.New(serviceName, logger.Options{
		Format: cfg.LogFormat,
		Debug:  cfg.Debug,
		Out:    cmd.ErrOrStderr(),
	})
	log.Debug().
		Str("url", cfg.URL).
		Dur("timeout", cfg.Timeout).
		Dur("wait", cfg.Wait).
		Str("query", cfg.Query).
		Strs("platforms", cfg.Platforms).
		Int("max_results", cfg.MaxResults).
		Str("output", cfg.Output).
		Bool("metrics_file_present", cfg.MetricsFile != "").
		Msg("Configuration loaded")
	return nil
}

func (o *rootOptions) newClient() (*client.Client, error) {
	copts := []client.Option{
		client.WithDebugLogging(o.cfg.Debug),
		client.WithUserAgent(serviceName + "-cli"),
	}
	if o.cfg.Timeout > 0 {
		copts = append(copts, client.WithHTTPTimeout(o.cfg.Timeout))
	}
	return client.New(o.cfg.URL, copts...)
}

// flushMetrics writes the default registry to the configured textfile.
func (o *rootOptions) flushMetrics() {
	if o.cfg == nil || o.cfg.MetricsFile == "" {
		return
	}
	if err := prometheus.WriteToTextfile(o.cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
		log.Warn().Err(err).Str("path", o.cfg.MetricsFile).Msg("write metrics textfile failed")
	}
}
