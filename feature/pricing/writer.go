package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog/models"
)

const defaultBatchSize = 500

// Writer persists per-SKU prices, price history and deck value facets.
// Writes go through bounded atomic batches, same as the catalog writer.
type Writer struct {
	st        store.Store
	log       *zap.Logger
	batchSize int
	now       func() time.Time
}

// NewWriter creates a pricing writer. batchSize bounds the number of
// commands per committed batch.
func NewWriter(st store.Store, log *zap.Logger, batchSize int) *Writer {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Writer{st: st, log: log, batchSize: batchSize, now: time.Now}
}

// WritePrices persists the latest price snapshot, a history point and the
// range bucket for every SKU of every priced card. A SKU whose condition has
// no matching record is skipped; the snapshot carries only exact-condition
// data.
func (w *Writer) WritePrices(ctx context.Context, cards []models.Card, book Book) error {
	timestamp := w.now().Unix()
	b := w.st.Batch()

	for i := range cards {
		card := &cards[i]
		records := book[card.TcgplayerProductID]
		if len(records) == 0 {
			continue
		}

		for _, sku := range card.TcgplayerSkus {
			record := exactRecord(records, sku.ConditionOrDefault())
			if record == nil {
				continue
			}

			latest, err := json.Marshal(LatestPrice{
				SkuID:       strconv.FormatUint(sku.SkuID, 10),
				MarketPrice: record.MarketPrice,
				DirectLow:   record.DirectLow,
				LowPrice:    record.LowPrice,
				Timestamp:   timestamp,
			})
			if err != nil {
				return fmt.Errorf("failed to marshal price for sku %d: %w", sku.SkuID, err)
			}
			b.Set(PriceLatestKey(sku.SkuID), string(latest))

			if record.MarketPrice != nil {
				price := *record.MarketPrice
				b.ZAdd(PriceHistoryKey(sku.SkuID), float64(timestamp),
					strconv.FormatFloat(price, 'f', -1, 64))
				b.SAdd(PriceRangeKey(PriceBucket(price)),
					strconv.FormatUint(sku.SkuID, 10))
			}

			var commitErr error
			if b, commitErr = w.commitIfFull(ctx, b); commitErr != nil {
				return commitErr
			}
		}
	}
	return w.commit(ctx, b)
}

// exactRecord finds the record for the given condition, or nil. Unlike the
// valuation fallback, snapshots never borrow another condition's price.
func exactRecord(records []PriceRecord, condition string) *PriceRecord {
	for i := range records {
		if strings.EqualFold(records[i].Condition, condition) {
			return &records[i]
		}
	}
	return nil
}

// WriteDeckValues persists the value facets of every valued deck: one bucket
// set per tier and the two sorted rankings.
func (w *Writer) WriteDeckValues(ctx context.Context, decks []*models.Deck) error {
	b := w.st.Batch()
	for _, deck := range decks {
		value := deck.EstimatedValue
		if value == nil {
			continue
		}

		b.SAdd(DeckValueMarketKey(ValueBucket(value.MarketTotal)), deck.UUID)
		b.SAdd(DeckValueDirectKey(ValueBucket(value.DirectTotal)), deck.UUID)
		b.SAdd(DeckValueLowKey(ValueBucket(value.LowTotal)), deck.UUID)

		b.ZAdd(KeyDecksByMarketValue, value.MarketTotal, deck.UUID)
		b.ZAdd(KeyDecksByDirectValue, value.DirectTotal, deck.UUID)

		var commitErr error
		if b, commitErr = w.commitIfFull(ctx, b); commitErr != nil {
			return commitErr
		}
	}
	return w.commit(ctx, b)
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
