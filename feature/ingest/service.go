package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog"
	"mtg-indexer/feature/catalog/models"
	"mtg-indexer/feature/pricing"
	"mtg-indexer/feature/search"
)

// statsSource names the bulk data origin in the persisted stats record.
const statsSource = "mtgjson"

// Service runs full indexing passes.
type Service struct {
	st        store.Store
	source    catalog.Source
	corpusCfg catalog.Config
	indexCfg  search.Config
	logger    *zap.Logger
}

// NewService creates an ingest service.
func NewService(st store.Store, source catalog.Source, corpusCfg catalog.Config, indexCfg search.Config, logger *zap.Logger) *Service {
	return &Service{
		st:        st,
		source:    source,
		corpusCfg: corpusCfg,
		indexCfg:  indexCfg,
		logger:    logger,
	}
}

// Run executes one full pass and returns the persisted stats.
func (s *Service) Run(ctx context.Context) (*models.Stats, error) {
	started := time.Now()

	corpus, err := catalog.NewLoader(s.source, s.corpusCfg, s.logger).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	book, err := pricing.LoadBook(ctx, s.source, s.corpusCfg.PricesFile)
	if err != nil {
		s.logger.Warn("price file unavailable, pass continues unpriced", zap.Error(err))
		book = pricing.Book{}
	}

	if err := s.st.Ping(ctx); err != nil {
		return nil, fmt.Errorf("store unavailable: %w", err)
	}

	cleared, err := s.st.Clear(ctx, catalog.ClearPatterns()...)
	if err != nil {
		return nil, fmt.Errorf("failed to clear namespaces: %w", err)
	}
	s.logger.Info("cleared previous pass", zap.Int64("keys", cleared))

	batchSize := s.indexCfg.BatchSize
	catalogWriter := catalog.NewWriter(s.st, s.logger, batchSize)
	pricingWriter := pricing.NewWriter(s.st, s.logger, batchSize)
	indexer := search.NewIndexer(s.st, s.logger, s.indexCfg)

	if err := catalogWriter.WriteSets(ctx, corpus.Sets); err != nil {
		return nil, err
	}

	// Card pass.
	if err := catalogWriter.WriteCards(ctx, corpus.Cards); err != nil {
		return nil, err
	}
	if err := pricingWriter.WritePrices(ctx, corpus.Cards, book); err != nil {
		return nil, err
	}
	if err := indexer.IndexCards(ctx, corpus.Cards); err != nil {
		return nil, err
	}

	// Deck pass. Valuation runs before persistence so the value facets and
	// the meta records agree.
	for _, deck := range corpus.Decks {
		deck.EstimatedValue = pricing.ValueDeck(deck, book, corpus.SkuIndex)
	}
	if err := catalogWriter.WriteDecks(ctx, corpus.Decks); err != nil {
		return nil, err
	}
	if err := pricingWriter.WriteDeckValues(ctx, corpus.Decks); err != nil {
		return nil, err
	}
	if err := indexer.IndexDecks(ctx, corpus.Decks); err != nil {
		return nil, err
	}

	stats := models.Stats{
		TotalSets:      len(corpus.Sets),
		TotalCards:     len(corpus.Cards),
		ProcessedCards: len(corpus.Cards),
		TotalDecks:     len(corpus.Decks),
		ProcessedDecks: len(corpus.Decks),
		LastUpdate:     time.Now().UTC().Format(time.RFC3339),
		Source:         statsSource,
		Version:        corpus.Meta.Version,
	}
	if err := catalogWriter.WriteStats(ctx, stats); err != nil {
		return nil, err
	}

	// The ready marker is the last write, so an interrupted pass never
	// leaves a ready index with stale stats.
	if err := indexer.MarkReady(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark index ready: %w", err)
	}

	s.logger.Info("indexing pass complete",
		zap.Int("sets", stats.TotalSets),
		zap.Int("cards", stats.ProcessedCards),
		zap.Int("decks", stats.ProcessedDecks),
		zap.Duration("elapsed", time.Since(started)))
	return &stats, nil
}
