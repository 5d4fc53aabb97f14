package main

import (
	"github.com/aretw0/jumptable/internal/cli"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:       "reset [stack|queue|list]...",
	Short:     "Delete saved structures (all of them by default)",
	ValidArgs: []string{"stack", "queue", "list"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds, err := parseKinds(args)
		if err != nil {
			return err
		}
		return cli.Reset(cmd.Context(), cfg, cmd.OutOrStdout(), kinds)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
