package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/jumptable"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jumptable",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jumptable version %s\n", strings.TrimSpace(jumptable.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
