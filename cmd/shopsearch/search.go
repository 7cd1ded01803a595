package main

import (
	"time"

	"github.com/mycelian/shopsearch/client"
	"github.com/mycelian/shopsearch/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type searchParams struct {
	req    client.SearchRequest
	output string
	wait   time.Duration
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		query      string
		platforms  []string
		maxResults int
		output     string
		wait       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products on one or more platforms",
		Example: `  shopsearch search --query laptop --platform alibaba
  shopsearch search -q "wireless mouse" -p temu,daraz --max-results 20 -o table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := searchParams{
				req: client.SearchRequest{
					Query:      opts.cfg.Query,
					Platforms:  opts.cfg.Platforms,
					MaxResults: opts.cfg.MaxResults,
				},
				output: opts.cfg.Output,
				wait:   opts.cfg.Wait,
			}
			flags := cmd.Flags()
			if flags.Changed("query") {
				p.req.Query = query
			}
			if flags.Changed("platform") {
				p.req.Platforms = platforms
			}
			if flags.Changed("max-results") {
				p.req.MaxResults = maxResults
			}
			if flags.Changed("output") {
				p.output = output
			}
			if flags.Changed("wait") {
				p.wait = wait
			}
			return runSearch(cmd, opts, p)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search term (env SHOPSEARCH_QUERY, default laptop)")
	cmd.Flags().StringSliceVarP(&platforms, "platform", "p", nil, "Platform to search; repeat or comma-separate (env SHOPSEARCH_PLATFORMS, default alibaba)")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Results per platform; 0 leaves it to the service")
	cmd.Flags().StringVarP(&output, "output", "o", config.OutputJSON, "Output format: json|yaml|table")
	cmd.Flags().DurationVar(&wait, "wait", 0, "Wait up to this long for the service health check before searching")

	return cmd
}

// runSearch performs exactly one search exchange and prints the reply.
func runSearch(cmd *cobra.Command, opts *rootOptions, p searchParams) error {
	defer opts.flushMetrics()

	if err := validateOutput(p.output); err != nil {
		return err
	}

	c, err := opts.newClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if p.wait > 0 {
		if _, err := c.WaitUntilHealthy(ctx, p.wait); err != nil {
			return err
		}
	}

	log.Debug().
		Str("query", p.req.Query).
		Strs("platforms", p.req.Platforms).
		Int("max_results", p.req.MaxResults).
		Str("service_url", opts.cfg.URL).
		Msg("searching")

	start := time.Now()
	resp, err := c.Search(ctx, p.req)
	elapsed := time.Since(start)

	if err != nil {
		log.Debug().
			Err(err).
			Str("query", p.req.Query).
			Dur("elapsed", elapsed).
			Msg("search failed")
		return err
	}

	if !resp.OK() {
		log.Warn().
			Int("status_code", resp.StatusCode).
			Str("query", p.req.Query).
			Msg("search service returned a non-success status")
	}

	log.Debug().
		Int("status_code", resp.StatusCode).
		Int("bytes", len(resp.Raw)).
		Dur("elapsed", elapsed).
		Msg("search completed")

	return writeResult(cmd.OutOrStdout(), resp, p.output)
}
