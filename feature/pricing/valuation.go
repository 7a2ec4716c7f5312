package pricing

import "mtg-indexer/feature/catalog/models"

// ValueDeck aggregates the deck's worth across all boards. Each price tier
// accumulates independently; the priced and unpriced tallies are weighted
// by copy count. The result replaces any previous valuation wholesale.
func ValueDeck(deck *models.Deck, book Book, skuIndex map[string][]models.SKU) *models.DeckValue {
	value := &models.DeckValue{}

	for _, card := range deck.AllCards() {
		resolved := book.Resolve(card.TcgplayerProductID, skuIndex[card.TcgplayerProductID])
		if !resolved.Priced {
			value.CardsWithoutPricing += card.Count
			continue
		}

		count := float64(card.Count)
		if p := resolved.Record.MarketPrice; p != nil {
			value.MarketTotal += *p * count
		}
		if p := resolved.Record.DirectLow; p != nil {
			value.DirectTotal += *p * count
		}
		if p := resolved.Record.LowPrice; p != nil {
			value.LowTotal += *p * count
		}
		value.CardsWithPricing += card.Count
	}

	return value
}
