package main

import (
	"github.com/aretw0/jumptable/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Serves the configured store as an MCP server over standard input and output.

Tools:
- show_structures: read the saved stack, queue and list
- reset_structure: clear one or all of them

The menu diagram is published as the jumptable://graph resource. Logs go to
stderr so they never corrupt the JSON-RPC stream on stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.MCP(cmd.Context(), cfg, streams(cmd))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
