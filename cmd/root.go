package cmd

import (
	"fmt"
	"os"

	"mtg-indexer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mtg-indexer",
	Short: "MTG corpus indexer",
	Long: `mtg-indexer loads MTGJSON bulk dumps into a persistent store,
builds fuzzy search indexes over cards and preconstructed decks, and
serves them with pricing data over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level reads best for a CLI failure.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
