package main

import (
	"time"

	"github.com/aretw0/jumptable/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP inspection server",
	Long: `Exposes the saved structures of the configured store as JSON, plus health
and Prometheus endpoints. It never opens the interactive menu.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Serve(cmd.Context(), cfg, streams(cmd), nil)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("serve-addr", "127.0.0.1:8080", "Address to listen on")
	serveCmd.Flags().Duration("read-timeout", 5*time.Second, "Read header timeout")
}
