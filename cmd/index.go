package cmd

import (
	"fmt"
	"os"

	"mtg-indexer/core/config"
	"mtg-indexer/core/logger"
	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog"
	"mtg-indexer/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Run a full indexing pass",
	Long:  `Loads the bulk dumps, clears the previous index and rebuilds every record, posting set and valuation.`,
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

		source, err := catalog.NewSource(cfg.Corpus, cfg.ObjStore)
		if err != nil {
			logg.Fatal("Failed to create corpus source", zap.Error(err))
		}

		svc := ingest.NewService(st, source, cfg.Corpus, cfg.Indexer, logg)
		stats, err := svc.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Indexed %d cards across %d sets and %d decks (version %s)\n",
			stats.ProcessedCards, stats.TotalSets, stats.ProcessedDecks, stats.Version)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(indexCmd)
}
