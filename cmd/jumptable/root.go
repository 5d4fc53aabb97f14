package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/jumptable/internal/cli"
	"github.com/aretw0/jumptable/internal/config"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// cfg is loaded before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "jumptable",
	Short: "Edit a stack, a queue and a list from a menu",
	Long: `jumptable is a menu-driven editor for three character structures.
Each structure is saved when you leave its screen.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(viper.New(), cmd.Flags())
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func streams(cmd *cobra.Command) cli.Streams {
	return cli.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

// parseKinds converts arguments into kinds. No arguments means every kind.
func parseKinds(args []string) ([]domain.Kind, error) {
	if len(args) == 0 {
		return domain.Kinds, nil
	}
	kinds := make([]domain.Kind, 0, len(args))
	for _, arg := range args {
		kind, err := domain.ParseKind(arg)
		if err != nil {
			return nil, fmt.Errorf("%w (want stack, queue or list)", err)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default: jumptable.yaml in --dir or $HOME/.jumptable)")
	flags.String("dir", ".", "Directory holding stack.txt, queue.txt and list.txt")
	flags.String("store", config.StoreFile, "Storage backend: file, memory, redis or sqlite")
	flags.String("redis-addr", "localhost:6379", "Redis address")
	flags.String("redis-password", "", "Redis password")
	flags.Int("redis-db", 0, "Redis database")
	flags.String("redis-prefix", "jumptable:", "Prefix of every redis key")
	flags.Duration("lock-timeout", 2*time.Second, "How long to wait for another session to end (redis)")
	flags.Duration("store-timeout", 3*time.Second, "Bound on each store call (redis, sqlite)")
	flags.String("sqlite-path", "jumptable.db", "SQLite database file")
	flags.String("clear", "auto", "Screen clearing: auto, ansi, command or none")
	flags.Bool("color", true, "Colorize structures and prompts")
	flags.Bool("banner", true, "Print the banner on interactive start")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Write logs to this file")
	flags.Bool("debug", false, "Log state changes and operations to stderr")

	// viper keys use underscores.
	rootCmd.SetGlobalNormalizationFunc(normalizeFlag)
}

func normalizeFlag(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "-", "_"))
}
