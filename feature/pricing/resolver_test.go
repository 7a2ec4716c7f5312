package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtg-indexer/feature/catalog/models"
)

func fp(v float64) *float64 { return &v }

func testBook() Book {
	return NewBook([]PriceRecord{
		{ProductID: "1001", Condition: "Lightly Played", MarketPrice: fp(8), LowPrice: fp(6)},
		{ProductID: "1001", Condition: "Near Mint", MarketPrice: fp(10), DirectLow: fp(9), LowPrice: fp(7)},
		{ProductID: "2002", Condition: "Near Mint", MarketPrice: fp(50)},
	})
}

func TestBookResolve(t *testing.T) {
	book := testBook()

	t.Run("PrefersNearMintEnglishSku", func(t *testing.T) {
		skus := []models.SKU{
			{SkuID: 1, Condition: "LIGHTLY PLAYED", Language: "ENGLISH"},
			{SkuID: 2, Condition: "NEAR MINT", Language: "ENGLISH"},
		}
		resolved := book.Resolve("1001", skus)
		require.True(t, resolved.Priced)
		require.NotNil(t, resolved.SKU)
		assert.Equal(t, uint64(2), resolved.SKU.SkuID)
		assert.Equal(t, "Near Mint", resolved.Record.Condition)
		assert.Equal(t, 10.0, *resolved.Record.MarketPrice)
	})

	t.Run("ConditionSynonyms", func(t *testing.T) {
		skus := []models.SKU{
			{SkuID: 3, Condition: "nm", Language: "1"},
		}
		resolved := book.Resolve("1001", skus)
		require.True(t, resolved.Priced)
		assert.Equal(t, uint64(3), resolved.SKU.SkuID)
		// "nm" matches no record condition, so the first record stands in.
		assert.Equal(t, "Lightly Played", resolved.Record.Condition)
	})

	t.Run("FallsBackToFirstSku", func(t *testing.T) {
		skus := []models.SKU{
			{SkuID: 4, Condition: "Moderately Played", Language: "English"},
			{SkuID: 5, Condition: "Lightly Played", Language: "English"},
		}
		resolved := book.Resolve("1001", skus)
		require.True(t, resolved.Priced)
		assert.Equal(t, uint64(4), resolved.SKU.SkuID)
		// No record for Moderately Played; first record stands in.
		assert.Equal(t, "Lightly Played", resolved.Record.Condition)
	})

	t.Run("MatchesSkuConditionCaseInsensitive", func(t *testing.T) {
		skus := []models.SKU{
			{SkuID: 6, Condition: "LIGHTLY PLAYED", Language: "French"},
		}
		resolved := book.Resolve("1001", skus)
		require.True(t, resolved.Priced)
		assert.Equal(t, "Lightly Played", resolved.Record.Condition)
		assert.Equal(t, 8.0, *resolved.Record.MarketPrice)
	})

	t.Run("NoSkusUsesFirstRecord", func(t *testing.T) {
		resolved := book.Resolve("1001", nil)
		require.True(t, resolved.Priced)
		assert.Nil(t, resolved.SKU)
		assert.Equal(t, "Lightly Played", resolved.Record.Condition)
	})

	t.Run("EmptySkuConditionDefaultsToNearMint", func(t *testing.T) {
		skus := []models.SKU{{SkuID: 7, Language: "English"}}
		resolved := book.Resolve("1001", skus)
		require.True(t, resolved.Priced)
		assert.Equal(t, "Near Mint", resolved.Record.Condition)
	})

	t.Run("UnpricedOutcomes", func(t *testing.T) {
		assert.False(t, book.Resolve("", nil).Priced)
		assert.False(t, book.Resolve("9999", nil).Priced)
	})
}

func testDeck() *models.Deck {
	return &models.Deck{
		UUID: "deck_test",
		Name: "Test Deck",
		MainBoard: []models.DeckCard{
			{UUID: "bolt-1", Count: 4, TcgplayerProductID: "1001"},
			{UUID: "mystery-1", Count: 1},
		},
	}
}

func TestValueDeck(t *testing.T) {
	book := testBook()
	skuIndex := map[string][]models.SKU{
		"1001": {{SkuID: 9002, Condition: "NEAR MINT", Language: "ENGLISH", ProductID: 1001}},
	}

	t.Run("CountWeightedTotals", func(t *testing.T) {
		value := ValueDeck(testDeck(), book, skuIndex)
		assert.Equal(t, 40.0, value.MarketTotal)
		assert.Equal(t, 36.0, value.DirectTotal)
		assert.Equal(t, 28.0, value.LowTotal)
		assert.Equal(t, 4, value.CardsWithPricing)
		assert.Equal(t, 1, value.CardsWithoutPricing)
	})

	t.Run("TiersAccumulateIndependently", func(t *testing.T) {
		partial := NewBook([]PriceRecord{
			{ProductID: "1001", Condition: "Near Mint", MarketPrice: fp(10)},
		})
		value := ValueDeck(testDeck(), partial, skuIndex)
		assert.Equal(t, 40.0, value.MarketTotal)
		assert.Equal(t, 0.0, value.DirectTotal)
		assert.Equal(t, 0.0, value.LowTotal)
		assert.Equal(t, 4, value.CardsWithPricing)
	})

	t.Run("CommandersAndSideBoardCount", func(t *testing.T) {
		deck := testDeck()
		deck.Commanders = []models.DeckCard{{UUID: "cmd-1", Count: 1, TcgplayerProductID: "2002"}}
		deck.SideBoard = []models.DeckCard{{UUID: "side-1", Count: 2, TcgplayerProductID: "2002"}}

		value := ValueDeck(deck, book, skuIndex)
		assert.Equal(t, 40.0+3*50.0, value.MarketTotal)
		assert.Equal(t, 7, value.CardsWithPricing)
	})

	t.Run("EmptyBookPricesNothing", func(t *testing.T) {
		value := ValueDeck(testDeck(), Book{}, skuIndex)
		assert.Equal(t, 0.0, value.MarketTotal)
		assert.Equal(t, 0, value.CardsWithPricing)
		assert.Equal(t, 5, value.CardsWithoutPricing)
	})
}

func TestPriceBucket(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0.5, "under_1"},
		{1, "1_to_5"},
		{4.99, "1_to_5"},
		{5, "5_to_10"},
		{10, "10_to_25"},
		{25, "25_to_50"},
		{50, "50_to_100"},
		{100, "100_to_500"},
		{499.99, "100_to_500"},
		{500, "over_500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceBucket(tt.price), "price %v", tt.price)
	}
}

func TestValueBucket(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "under_25"},
		{24.99, "under_25"},
		{25, "25_to_50"},
		{50, "50_to_100"},
		{100, "100_to_200"},
		{200, "200_to_500"},
		{500, "over_500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValueBucket(tt.value), "value %v", tt.value)
	}
}
