package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"mtg-indexer/core/config"
	"mtg-indexer/core/logger"
	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the outcome of the last indexing pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			fmt.Printf("Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logg.Sync()

		st, err := store.NewRedis(cfg.Store)
		if err != nil {
			logg.Fatal("Failed to connect to store", zap.Error(err))
		}
		defer st.Close()

		stats, err := catalog.NewService(st, logg).Stats(cmd.Context())
		if err != nil {
			return err
		}
		if stats == nil {
			fmt.Println("No indexing pass has completed yet.")
			return nil
		}

		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
