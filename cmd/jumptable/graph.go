package main

import (
	"github.com/aretw0/jumptable/internal/cli"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the screen diagram",
	Long:  `Outputs a Mermaid diagram (graph TD) of the menu states and the options that move between them.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		highlight, _ := cmd.Flags().GetString("highlight")
		return cli.Graph(cmd.OutOrStdout(), highlight)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("highlight", "", "Mark a state as current: none, idle, stack, queue or list")
}
