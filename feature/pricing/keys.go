package pricing

import "strconv"

const (
	// KeyDecksByMarketValue sorts every valued deck by market total.
	KeyDecksByMarketValue = "deck:sorted_by_market_value"
	// KeyDecksByDirectValue sorts every valued deck by direct total.
	KeyDecksByDirectValue = "deck:sorted_by_direct_value"
)

func PriceLatestKey(skuID uint64) string {
	return "price:sku:" + strconv.FormatUint(skuID, 10) + ":latest"
}

func PriceHistoryKey(skuID uint64) string {
	return "price:sku:" + strconv.FormatUint(skuID, 10) + ":history"
}

func PriceRangeKey(bucket string) string { return "price:range:" + bucket }

func DeckValueMarketKey(bucket string) string { return "deck:value_market:" + bucket }
func DeckValueDirectKey(bucket string) string { return "deck:value_direct:" + bucket }
func DeckValueLowKey(bucket string) string    { return "deck:value_low:" + bucket }
