package main

import (
	"github.com/aretw0/jumptable/internal/cli"
	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the user guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		return cli.Guide(cmd.OutOrStdout(), width)
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
	guideCmd.Flags().Int("width", 80, "Word wrap width")
}
