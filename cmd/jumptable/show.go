package main

import (
	"github.com/aretw0/jumptable/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:       "show [stack|queue|list]...",
	Short:     "Print saved structures",
	ValidArgs: []string{"stack", "queue", "list"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds, err := parseKinds(args)
		if err != nil {
			return err
		}
		return cli.Show(cmd.Context(), cfg, cmd.OutOrStdout(), kinds)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
