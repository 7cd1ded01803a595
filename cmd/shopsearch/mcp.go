package main

import (
	"github.com/mycelian/shopsearch/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	var name, version string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve search tools over the Model Context Protocol (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			return mcp.ServeStdio(c, name, version)
		},
	}

	cmd.Flags().StringVar(&name, "server-name", mcp.DefaultServerName, "Server name advertised to MCP hosts")
	cmd.Flags().StringVar(&version, "server-version", mcp.DefaultServerVersion, "Server version advertised to MCP hosts")
	return cmd
}
