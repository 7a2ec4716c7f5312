package pricing

import "mtg-indexer/feature/catalog/models"

// PriceRecord is one observed market price for a product in a given
// condition. Each tier is optional; absent tiers simply do not contribute.
type PriceRecord struct {
	ProductID   string   `json:"tcgplayer_id"`
	ProductName string   `json:"product_name"`
	SetName     string   `json:"set_name"`
	Condition   string   `json:"condition"`
	MarketPrice *float64 `json:"tcg_market_price"`
	DirectLow   *float64 `json:"tcg_direct_low"`
	LowPrice    *float64 `json:"tcg_low_price"`
}

// Book holds every price record grouped by product id, preserving the
// source order within each product. Fallback selection depends on that
// order, so it is never re-sorted.
type Book map[string][]PriceRecord

// NewBook groups records by product id in source order.
func NewBook(records []PriceRecord) Book {
	book := make(Book)
	for _, rec := range records {
		book[rec.ProductID] = append(book[rec.ProductID], rec)
	}
	return book
}

// ResolvedPrice is the terminal outcome of resolving one card. Priced is
// false when any step of the chain came up empty.
type ResolvedPrice struct {
	Priced bool
	Record *PriceRecord
	SKU    *models.SKU
}

// LatestPrice is the persisted snapshot of a SKU's most recent record.
type LatestPrice struct {
	SkuID       string   `json:"sku_id"`
	MarketPrice *float64 `json:"tcg_market_price"`
	DirectLow   *float64 `json:"tcg_direct_low"`
	LowPrice    *float64 `json:"tcg_low_price"`
	Timestamp   int64    `json:"timestamp"`
}

// PricePoint is one historical market price observation.
type PricePoint struct {
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"`
}

// DeckValueEntry pairs a deck with its market total for ranked listings.
type DeckValueEntry struct {
	models.DeckMeta
	MarketValue float64 `json:"market_value"`
}
