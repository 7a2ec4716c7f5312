package pricing

import (
	"context"
	"encoding/json"
	"fmt"

	"mtg-indexer/feature/catalog"
)

// LoadBook reads the pre-cleaned price record file from the corpus source
// and groups it by product id. A missing or malformed file is an error; the
// caller decides whether a pass can continue without prices.
func LoadBook(ctx context.Context, source catalog.Source, name string) (Book, error) {
	rc, err := source.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open price file %s: %w", name, err)
	}
	defer rc.Close()

	var records []PriceRecord
	if err := json.NewDecoder(rc).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse price file %s: %w", name, err)
	}
	return NewBook(records), nil
}
