package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog/models"
)

const defaultBatchSize = 500

// Writer persists catalog entities and their cross-references. All writes go
// through bounded atomic batches: a batch commits whole or the pass fails.
type Writer struct {
	st        store.Store
	log       *zap.Logger
	batchSize int
}

// NewWriter creates a catalog writer. batchSize bounds the number of
// commands per committed batch.
func NewWriter(st store.Store, log *zap.Logger, batchSize int) *Writer {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Writer{st: st, log: log, batchSize: batchSize}
}

// WriteSets persists every set record and the set code index.
func (w *Writer) WriteSets(ctx context.Context, sets []models.Set) error {
	b := w.st.Batch()
	for _, set := range sets {
		payload, err := json.Marshal(set)
		if err != nil {
			return fmt.Errorf("failed to marshal set %s: %w", set.Code, err)
		}
		b.Set(SetKey(set.Code), string(payload))
		b.SAdd(KeySetCodes, set.Code)

		var commitErr error
		if b, commitErr = w.commitIfFull(ctx, b); commitErr != nil {
			return commitErr
		}
	}
	return w.commit(ctx, b)
}

// WriteCards persists card records and their cross-references: exact name,
// set membership, oracle identity, Tcgplayer product and SKU mappings.
// Oracle representative uuids are first-writer-wins.
func (w *Writer) WriteCards(ctx context.Context, cards []models.Card) error {
	b := w.st.Batch()
	for i := range cards {
		card := &cards[i]
		payload, err := json.Marshal(card)
		if err != nil {
			return fmt.Errorf("failed to marshal card %s: %w", card.UUID, err)
		}

		b.Set(CardKey(card.UUID), string(payload))
		b.SAdd(NameKey(card.Name), card.UUID)
		b.SAdd(SetCardsKey(card.SetCode), card.UUID)

		if card.ScryfallOracleID != "" {
			b.SetNX(OracleKey(card.ScryfallOracleID), card.UUID)
			b.Set(UUIDOracleKey(card.UUID), card.ScryfallOracleID)
			b.SAdd(OraclePrintingsKey(card.ScryfallOracleID), card.UUID)
		}

		if card.TcgplayerProductID != "" {
			b.Set(TcgplayerKey(card.TcgplayerProductID), card.UUID)
		}

		for _, sku := range card.TcgplayerSkus {
			meta, err := json.Marshal(skuMeta{
				Condition: sku.ConditionOrDefault(),
				Language:  sku.LanguageOrDefault(),
				Foil:      sku.IsFoil(),
				ProductID: strconv.FormatUint(sku.ProductID, 10),
			})
			if err != nil {
				return fmt.Errorf("failed to marshal sku %d: %w", sku.SkuID, err)
			}
			b.Set(SkuMetaKey(sku.SkuID), string(meta))
			b.Set(SkuCardKey(sku.SkuID), card.UUID)
			b.SAdd(CardSkusKey(card.UUID), strconv.FormatUint(sku.SkuID, 10))
		}

		var commitErr error
		if b, commitErr = w.commitIfFull(ctx, b); commitErr != nil {
			return commitErr
		}
	}
	return w.commit(ctx, b)
}

type skuMeta struct {
	Condition string `json:"condition"`
	Language  string `json:"language"`
	Foil      bool   `json:"foil"`
	ProductID string `json:"product_id"`
}

// WriteDecks persists deck records, their browse metadata and the
// non-pricing facets. Value facets are written by the pricing writer once
// valuation has run.
func (w *Writer) WriteDecks(ctx context.Context, decks []*models.Deck) error {
	b := w.st.Batch()
	for _, deck := range decks {
		payload, err := json.Marshal(deck)
		if err != nil {
			return fmt.Errorf("failed to marshal deck %s: %w", deck.UUID, err)
		}

		slug := models.DeckSlug(deck.Code, deck.Name)
		meta, err := json.Marshal(models.DeckMeta{
			UUID:           deck.UUID,
			Name:           deck.Name,
			Code:           deck.Code,
			DeckType:       deck.DeckType,
			ReleaseDate:    deck.ReleaseDate,
			IsCommander:    deck.IsCommander,
			TotalCards:     deck.TotalCards,
			UniqueCards:    deck.UniqueCards,
			Slug:           slug,
			EstimatedValue: deck.EstimatedValue,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal deck meta %s: %w", deck.UUID, err)
		}

		b.Set(DeckKey(deck.UUID), string(payload))
		b.Set(DeckSlugKey(slug), deck.UUID)
		b.Set(DeckMetaKey(deck.UUID), string(meta))

		b.SAdd(DeckNameKey(deck.Name), deck.UUID)
		b.SAdd(DeckTypeKey(deck.DeckType), deck.UUID)
		b.SAdd(DeckSetKey(deck.Code), deck.UUID)
		b.SAdd(DeckReleaseKey(deck.ReleaseDate), deck.UUID)
		if year, _, ok := strings.Cut(deck.ReleaseDate, "-"); ok {
			b.SAdd(DeckYearKey(year), deck.UUID)
		}
		b.SAdd(DeckCommanderKey(deck.IsCommander), deck.UUID)
		b.SAdd(DeckSizeKey(DeckSizeBucket(deck.TotalCards)), deck.UUID)

		for _, card := range deck.AllCards() {
			b.ZAdd(DeckCardsKey(deck.UUID), float64(card.Count), card.UUID)
			b.SAdd(CardDecksKey(card.UUID), deck.UUID)
		}

		for _, commander := range deck.Commanders {
			b.SAdd(DeckCommandersKey(deck.UUID), commander.UUID)
			b.SAdd(CommanderDecksKey(commander.UUID), deck.UUID)
		}

		var commitErr error
		if b, commitErr = w.commitIfFull(ctx, b); commitErr != nil {
			return commitErr
		}
	}
	return w.commit(ctx, b)
}

// WriteStats persists the pass outcome.
func (w *Writer) WriteStats(ctx context.Context, stats models.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	return w.st.Set(ctx, KeyStats, string(payload))
}

func (w *Writer) commitIfFull(ctx context.Context, b store.Batch) (store.Batch, error) {
	if b.Len() < w.batchSize {
		return b, nil
	}
	if err := b.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}
	return w.st.Batch(), nil
}

func (w *Writer) commit(ctx context.Context, b store.Batch) error {
	if b.Len() == 0 {
		return nil
	}
	if err := b.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}
