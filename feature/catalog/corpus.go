package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"mtg-indexer/feature/catalog/models"
)

// Corpus is the typed, in-memory view of the source files a pass works on.
type Corpus struct {
	Meta     models.Meta
	Sets     []models.Set
	Cards    []models.Card
	SkuIndex map[string][]models.SKU
	Decks    []*models.Deck
}

// Loader parses the bulk JSON dumps into typed records. A malformed file or
// record is logged and skipped; it never aborts the pass.
type Loader struct {
	source Source
	cfg    Config
	log    *zap.Logger
}

// NewLoader creates a corpus loader over the given source.
func NewLoader(source Source, cfg Config, log *zap.Logger) *Loader {
	return &Loader{source: source, cfg: cfg, log: log}
}

// Load reads the whole corpus: printings, SKUs and decks.
func (l *Loader) Load(ctx context.Context) (*Corpus, error) {
	printings, err := l.loadPrintings(ctx)
	if err != nil {
		return nil, err
	}

	skuIndex, err := l.loadSkuIndex(ctx)
	if err != nil {
		l.log.Warn("SKU file unavailable, continuing without SKU data", zap.Error(err))
		skuIndex = map[string][]models.SKU{}
	}

	corpus := &Corpus{
		Meta:     printings.Meta,
		SkuIndex: skuIndex,
	}

	// Deterministic set order keeps chunk partitioning stable across runs.
	codes := make([]string, 0, len(printings.Data))
	for code := range printings.Data {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		set := printings.Data[code]
		corpus.Sets = append(corpus.Sets, models.Set{
			Code:        set.Code,
			Name:        set.Name,
			ReleaseDate: set.ReleaseDate,
			SetType:     set.SetType,
			TotalCards:  len(set.Cards),
			BaseSetSize: set.BaseSetSize,
		})
		for _, src := range set.Cards {
			if src.UUID == "" || src.Name == "" {
				l.log.Warn("skipping card with missing identity",
					zap.String("set", set.Code), zap.String("name", src.Name))
				continue
			}
			corpus.Cards = append(corpus.Cards, buildCard(src, set, skuIndex))
		}
	}

	decks, err := l.LoadDecks(ctx)
	if err != nil {
		l.log.Warn("deck corpus unavailable, continuing without decks", zap.Error(err))
	} else {
		corpus.Decks = decks
	}

	return corpus, nil
}

func (l *Loader) loadPrintings(ctx context.Context) (*models.AllPrintingsFile, error) {
	rc, err := l.source.Open(ctx, l.cfg.AllPrintingsFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var file models.AllPrintingsFile
	if err := json.NewDecoder(rc).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", l.cfg.AllPrintingsFile, err)
	}
	return &file, nil
}

// loadSkuIndex reads the SKU dump and re-keys it by Tcgplayer product id,
// preserving source order within each product.
func (l *Loader) loadSkuIndex(ctx context.Context) (map[string][]models.SKU, error) {
	rc, err := l.source.Open(ctx, l.cfg.SkusFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var file models.TcgplayerSkusFile
	if err := json.NewDecoder(rc).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", l.cfg.SkusFile, err)
	}

	index := make(map[string][]models.SKU)
	for _, skus := range file.Data {
		for _, sku := range skus {
			if sku.ProductID == 0 {
				continue
			}
			pid := fmt.Sprintf("%d", sku.ProductID)
			index[pid] = append(index[pid], sku)
		}
	}
	return index, nil
}

// LoadDecks reads every deck dump under the configured deck prefix.
func (l *Loader) LoadDecks(ctx context.Context) ([]*models.Deck, error) {
	names, err := l.source.List(ctx, l.cfg.DecksDir)
	if err != nil {
		return nil, err
	}

	decks := make([]*models.Deck, 0, len(names))
	for _, name := range names {
		deck, err := l.loadDeckFile(ctx, name)
		if err != nil {
			l.log.Warn("skipping malformed deck file",
				zap.String("file", name), zap.Error(err))
			continue
		}
		decks = append(decks, deck)
	}
	return decks, nil
}

func (l *Loader) loadDeckFile(ctx context.Context, name string) (*models.Deck, error) {
	rc, err := l.source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var file models.DeckFile
	if err := json.NewDecoder(rc).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode deck file: %w", err)
	}
	if file.Data.Name == "" || file.Data.Code == "" {
		return nil, fmt.Errorf("deck file has no name or code")
	}
	return BuildDeck(file.Data), nil
}

// buildCard flattens a source printing into the stored card record.
func buildCard(src models.SourceCard, set models.SourceSet, skuIndex map[string][]models.SKU) models.Card {
	productID := src.Identifiers.TcgplayerProductID

	var skus []models.SKU
	if productID != "" {
		skus = skuIndex[productID]
	}

	return models.Card{
		UUID:               src.UUID,
		Name:               src.Name,
		SetCode:            set.Code,
		SetName:            set.Name,
		CollectorNumber:    src.Number,
		Rarity:             src.Rarity,
		ManaValue:          src.ManaValue,
		ManaCost:           src.ManaCost,
		Colors:             src.Colors,
		ColorIdentity:      src.ColorIdentity,
		Types:              src.Types,
		Subtypes:           src.Subtypes,
		Supertypes:         src.Supertypes,
		Power:              src.Power,
		Toughness:          src.Toughness,
		Loyalty:            src.Loyalty,
		Defense:            src.Defense,
		Text:               src.Text,
		FlavorText:         src.FlavorText,
		Layout:             src.Layout,
		Availability:       src.Availability,
		Finishes:           src.Finishes,
		HasFoil:            src.HasFoil,
		HasNonFoil:         src.HasNonFoil,
		IsReserved:         src.IsReserved,
		IsPromo:            src.IsPromo,
		ReleaseDate:        set.ReleaseDate,
		ScryfallOracleID:   src.Identifiers.ScryfallOracleID,
		ScryfallID:         src.Identifiers.ScryfallID,
		TcgplayerProductID: productID,
		TcgplayerSkus:      skus,
		PurchaseUrls:       src.PurchaseUrls,
	}
}

// BuildDeck converts a deck dump body into the stored deck record.
// displayCommander takes precedence over commander for the board, while
// either marks the deck as a commander deck.
func BuildDeck(data models.DeckData) *models.Deck {
	commanderSource := data.Commander
	if len(data.DisplayCommander) > 0 {
		commanderSource = data.DisplayCommander
	}

	commanders := buildDeckCards(commanderSource)
	mainBoard := buildDeckCards(data.MainBoard)
	sideBoard := buildDeckCards(data.SideBoard)

	total := 0
	seen := make(map[string]struct{})
	for _, board := range [][]models.DeckCard{commanders, mainBoard, sideBoard} {
		for _, c := range board {
			total += c.Count
			seen[c.UUID] = struct{}{}
		}
	}

	deckType := data.DeckType
	if deckType == "" {
		deckType = "Unknown"
	}
	releaseDate := data.ReleaseDate
	if releaseDate == "" {
		releaseDate = "Unknown"
	}

	return &models.Deck{
		UUID:        models.DeckUUID(data.Code, data.Name),
		Name:        data.Name,
		Code:        data.Code,
		DeckType:    deckType,
		ReleaseDate: releaseDate,
		IsCommander: len(data.Commander) > 0 || len(data.DisplayCommander) > 0,
		TotalCards:  total,
		UniqueCards: len(seen),
		Commanders:  commanders,
		MainBoard:   mainBoard,
		SideBoard:   sideBoard,
	}
}

func buildDeckCards(cards []models.SourceCard) []models.DeckCard {
	out := make([]models.DeckCard, 0, len(cards))
	for _, c := range cards {
		isFoil := false
		for _, f := range c.Finishes {
			if f == "foil" {
				isFoil = true
				break
			}
		}
		out = append(out, models.DeckCard{
			UUID:               c.UUID,
			Name:               c.Name,
			Count:              c.CountOrOne(),
			IsFoil:             isFoil,
			SetCode:            c.SetCode,
			TcgplayerProductID: c.Identifiers.TcgplayerProductID,
		})
	}
	return out
}
