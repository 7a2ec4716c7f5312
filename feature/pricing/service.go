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
	"mtg-indexer/feature/catalog"
)

// DefaultCondition is assumed when a price query names no condition.
const DefaultCondition = "Near Mint"

// DefaultHistoryDays bounds a history query that names no window.
const DefaultHistoryDays = 30

// Service answers price lookups from the persisted pricing keys.
type Service struct {
	st      store.Store
	catalog *catalog.Service
	logger  *zap.Logger
	now     func() int64
}

// NewService creates a pricing service.
func NewService(st store.Store, catalogSvc *catalog.Service, logger *zap.Logger) *Service {
	return &Service{
		st:      st,
		catalog: catalogSvc,
		logger:  logger,
		now:     func() int64 { return time.Now().Unix() },
	}
}

// CardPrice is the latest price of one card in one condition.
type CardPrice struct {
	UUID      string `json:"uuid"`
	Condition string `json:"condition"`
	LatestPrice
}

// skuMetaRecord mirrors the persisted SKU metadata.
type skuMetaRecord struct {
	Condition string `json:"condition"`
	Language  string `json:"language"`
	Foil      bool   `json:"foil"`
	ProductID string `json:"product_id"`
}

// CardPrice finds the card's SKU in the requested condition and returns its
// latest price. Nil when the card, the SKU or the price is unknown.
func (s *Service) CardPrice(ctx context.Context, uuid, condition string) (*CardPrice, error) {
	if condition == "" {
		condition = DefaultCondition
	}

	skuIDs, err := s.st.SMembers(ctx, catalog.CardSkusKey(uuid))
	if err != nil {
		return nil, fmt.Errorf("failed to list skus for card %s: %w", uuid, err)
	}

	for _, raw := range skuIDs {
		skuID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			s.logger.Warn("malformed sku id in card index",
				zap.String("uuid", uuid), zap.String("sku_id", raw))
			continue
		}

		payload, found, err := s.st.Get(ctx, catalog.SkuMetaKey(skuID))
		if err != nil {
			return nil, fmt.Errorf("failed to load sku %d: %w", skuID, err)
		}
		if !found {
			continue
		}
		var meta skuMetaRecord
		if err := json.Unmarshal([]byte(payload), &meta); err != nil {
			s.logger.Warn("malformed sku metadata", zap.Uint64("sku_id", skuID), zap.Error(err))
			continue
		}
		if !strings.EqualFold(meta.Condition, condition) {
			continue
		}

		latest, err := s.SkuLatest(ctx, skuID)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			continue
		}
		return &CardPrice{UUID: uuid, Condition: meta.Condition, LatestPrice: *latest}, nil
	}
	return nil, nil
}

// SkuLatest returns the latest price snapshot of one SKU, or nil.
func (s *Service) SkuLatest(ctx context.Context, skuID uint64) (*LatestPrice, error) {
	payload, found, err := s.st.Get(ctx, PriceLatestKey(skuID))
	if err != nil {
		return nil, fmt.Errorf("failed to load price for sku %d: %w", skuID, err)
	}
	if !found {
		return nil, nil
	}
	var latest LatestPrice
	if err := json.Unmarshal([]byte(payload), &latest); err != nil {
		return nil, fmt.Errorf("failed to parse price for sku %d: %w", skuID, err)
	}
	return &latest, nil
}

// SkuHistory returns the market price points of the last N days, oldest
// first.
func (s *Service) SkuHistory(ctx context.Context, skuID uint64, days int) ([]PricePoint, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	end := s.now()
	start := end - int64(days)*86400

	members, err := s.st.ZRangeByScore(ctx, PriceHistoryKey(skuID), float64(start), float64(end))
	if err != nil {
		return nil, fmt.Errorf("failed to load history for sku %d: %w", skuID, err)
	}

	points := make([]PricePoint, 0, len(members))
	for _, m := range members {
		price, err := strconv.ParseFloat(m.Member, 64)
		if err != nil {
			s.logger.Warn("malformed history point",
				zap.Uint64("sku_id", skuID), zap.String("member", m.Member))
			continue
		}
		points = append(points, PricePoint{Price: price, Timestamp: int64(m.Score)})
	}
	return points, nil
}

// ExpensiveDecks returns up to limit decks ranked by market value, highest
// first, dropping entries below minValue.
func (s *Service) ExpensiveDecks(ctx context.Context, minValue float64, limit int) ([]DeckValueEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	ranked, err := s.st.ZRevRange(ctx, KeyDecksByMarketValue, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to rank decks by value: %w", err)
	}

	entries := make([]DeckValueEntry, 0, len(ranked))
	for _, sm := range ranked {
		if sm.Score < minValue {
			break
		}
		meta, err := s.catalog.DeckMetaByUUID(ctx, sm.Member)
		if err != nil {
			return nil, err
		}
		if meta == nil {
			s.logger.Warn("dangling deck in value ranking", zap.String("uuid", sm.Member))
			continue
		}
		entries = append(entries, DeckValueEntry{DeckMeta: *meta, MarketValue: sm.Score})
	}
	return entries, nil
}
