package main

import (
	"github.com/aretw0/jumptable/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive menu",
	Long:  `Starts at the main menu. Structures are loaded when their screen opens and saved when it closes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunSession(cmd.Context(), cfg, streams(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("metrics-addr", "", "Expose Prometheus metrics on this address while running")

	// run is the default command.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
