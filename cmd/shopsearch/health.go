package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newHealthCmd(opts *rootOptions) *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the search service is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.flushMetrics()

			if !cmd.Flags().Changed("wait") {
				wait = opts.cfg.Wait
			}

			c, err := opts.newClient()
			if err != nil {
				return err
			}

			start := time.Now()
			hs, err := c.WaitUntilHealthy(cmd.Context(), wait)
			if err != nil {
				return err
			}
			log.Debug().Dur("elapsed", time.Since(start)).Msg("health check completed")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status: %s\n", hs.Status)
			if hs.Message != "" {
				fmt.Fprintf(out, "Message: %s\n", hs.Message)
			}
			if hs.Headless != nil {
				fmt.Fprintf(out, "Headless: %t\n", *hs.Headless)
			}
			if len(hs.Platforms) > 0 {
				fmt.Fprintf(out, "Platforms: %s\n", strings.Join(hs.Platforms, ", "))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep probing with backoff for up to this long")
	return cmd
}
