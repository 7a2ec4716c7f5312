package cmd

import (
	"fmt"
	"os"

	"mtg-indexer/core/config"
	"mtg-indexer/core/logger"
	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog"
	"mtg-indexer/feature/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	searchLimit int
	searchDecks bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot fuzzy search",
	Long:  `Resolves a fuzzy query against the built index and prints the scored matches.`,
	Args:  cobra.ExactArgs(1),
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

		svc := search.NewService(st, catalog.NewService(st, logg), logg)

		if searchDecks {
			decks, err := svc.SearchDecks(cmd.Context(), args[0], searchLimit)
			if err != nil {
				return err
			}
			for _, d := range decks {
				fmt.Printf("%6.1f  %s  %s (%s)\n", d.Score, d.UUID, d.Name, d.Code)
			}
			return nil
		}

		cards, err := svc.SearchCards(cmd.Context(), args[0], searchLimit, nil)
		if err != nil {
			return err
		}
		for _, c := range cards {
			fmt.Printf("%6.1f  %s  %s [%s]\n", c.Score, c.UUID, c.Name, c.SetCode)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", search.DefaultLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchDecks, "decks", false, "search decks instead of cards")
	RootCmd.AddCommand(searchCmd)
}
