package pricing

import (
	"strings"

	"mtg-indexer/feature/catalog/models"
)

// Resolve walks the pricing chain for one product: records are looked up by
// product id, the best SKU is the first Near Mint English one (falling back
// to the first SKU in source order), and the record is the first whose
// condition matches the chosen SKU (falling back to the first record).
// Any empty step yields an unpriced outcome.
func (b Book) Resolve(productID string, skus []models.SKU) ResolvedPrice {
	if productID == "" {
		return ResolvedPrice{}
	}
	records := b[productID]
	if len(records) == 0 {
		return ResolvedPrice{}
	}

	if len(skus) == 0 {
		return ResolvedPrice{Priced: true, Record: &records[0]}
	}

	sku := bestSKU(skus)
	record := matchRecord(records, sku.ConditionOrDefault())
	return ResolvedPrice{Priced: true, Record: record, SKU: sku}
}

// bestSKU prefers the first Near Mint English SKU; otherwise the first SKU
// in source order stands in.
func bestSKU(skus []models.SKU) *models.SKU {
	for i := range skus {
		if skus[i].IsNearMint() && skus[i].IsEnglish() {
			return &skus[i]
		}
	}
	return &skus[0]
}

// matchRecord finds the first record for the target condition, falling back
// to the first record.
func matchRecord(records []PriceRecord, condition string) *PriceRecord {
	for i := range records {
		if strings.EqualFold(records[i].Condition, condition) {
			return &records[i]
		}
	}
	return &records[0]
}
