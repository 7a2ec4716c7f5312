package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog/models"
)

// Service handles catalog lookups.
type Service struct {
	st     store.Store
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{st: st, logger: logger}
}

// CardByUUID returns the card record for the given uuid, or nil if unknown.
func (s *Service) CardByUUID(ctx context.Context, uuid string) (*models.Card, error) {
	payload, found, err := s.st.Get(ctx, CardKey(uuid))
	if err != nil {
		return nil, fmt.Errorf("failed to load card %s: %w", uuid, err)
	}
	if !found {
		return nil, nil
	}

	var card models.Card
	if err := json.Unmarshal([]byte(payload), &card); err != nil {
		return nil, fmt.Errorf("failed to decode card %s: %w", uuid, err)
	}
	return &card, nil
}

// CardsByName returns every printing with the given exact name,
// case-insensitively.
func (s *Service) CardsByName(ctx context.Context, name string) ([]models.Card, error) {
	uuids, err := s.st.SMembers(ctx, NameKey(name))
	if err != nil {
		return nil, fmt.Errorf("failed to look up name %q: %w", name, err)
	}
	return s.loadCards(ctx, uuids)
}

// CardByOracle returns the representative printing for an oracle id.
func (s *Service) CardByOracle(ctx context.Context, oracleID string) (*models.Card, error) {
	uuid, found, err := s.st.Get(ctx, OracleKey(oracleID))
	if err != nil {
		return nil, fmt.Errorf("failed to look up oracle %s: %w", oracleID, err)
	}
	if !found {
		return nil, nil
	}
	return s.CardByUUID(ctx, uuid)
}

// PrintingsByOracle returns every printing sharing an oracle identity.
func (s *Service) PrintingsByOracle(ctx context.Context, oracleID string) ([]models.Card, error) {
	uuids, err := s.st.SMembers(ctx, OraclePrintingsKey(oracleID))
	if err != nil {
		return nil, fmt.Errorf("failed to list printings for oracle %s: %w", oracleID, err)
	}
	return s.loadCards(ctx, uuids)
}

// CardBySkuID resolves a SKU id back to its card.
func (s *Service) CardBySkuID(ctx context.Context, skuID uint64) (*models.Card, error) {
	uuid, found, err := s.st.Get(ctx, SkuCardKey(skuID))
	if err != nil {
		return nil, fmt.Errorf("failed to look up sku %d: %w", skuID, err)
	}
	if !found {
		return nil, nil
	}
	return s.CardByUUID(ctx, uuid)
}

func (s *Service) loadCards(ctx context.Context, uuids []string) ([]models.Card, error) {
	cards := make([]models.Card, 0, len(uuids))
	for _, uuid := range uuids {
		card, err := s.CardByUUID(ctx, uuid)
		if err != nil {
			return nil, err
		}
		if card == nil {
			s.logger.Warn("dangling card reference", zap.String("uuid", uuid))
			continue
		}
		cards = append(cards, *card)
	}
	return cards, nil
}

// SetByCode returns the set record for the given code.
func (s *Service) SetByCode(ctx context.Context, code string) (*models.Set, error) {
	payload, found, err := s.st.Get(ctx, SetKey(code))
	if err != nil {
		return nil, fmt.Errorf("failed to load set %s: %w", code, err)
	}
	if !found {
		return nil, nil
	}

	var set models.Set
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		return nil, fmt.Errorf("failed to decode set %s: %w", code, err)
	}
	return &set, nil
}

// Sets returns every indexed set.
func (s *Service) Sets(ctx context.Context) ([]models.Set, error) {
	codes, err := s.st.SMembers(ctx, KeySetCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list set codes: %w", err)
	}

	sets := make([]models.Set, 0, len(codes))
	for _, code := range codes {
		set, err := s.SetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if set == nil {
			continue
		}
		sets = append(sets, *set)
	}
	return sets, nil
}

// CardsInSet returns the card uuids belonging to a set.
func (s *Service) CardsInSet(ctx context.Context, code string) ([]string, error) {
	uuids, err := s.st.SMembers(ctx, SetCardsKey(code))
	if err != nil {
		return nil, fmt.Errorf("failed to list cards of set %s: %w", code, err)
	}
	return uuids, nil
}

// normalizeDeckID accepts deck ids with or without the deck_ prefix.
func normalizeDeckID(id string) string {
	if strings.HasPrefix(id, "deck_") {
		return id
	}
	return "deck_" + id
}

// DeckByUUID returns the full deck record.
func (s *Service) DeckByUUID(ctx context.Context, id string) (*models.Deck, error) {
	payload, found, err := s.st.Get(ctx, DeckKey(normalizeDeckID(id)))
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	var deck models.Deck
	if err := json.Unmarshal([]byte(payload), &deck); err != nil {
		return nil, fmt.Errorf("failed to decode deck %s: %w", id, err)
	}
	return &deck, nil
}

// DeckMetaByUUID returns the lightweight browse record of a deck.
func (s *Service) DeckMetaByUUID(ctx context.Context, id string) (*models.DeckMeta, error) {
	payload, found, err := s.st.Get(ctx, DeckMetaKey(normalizeDeckID(id)))
	if err != nil {
		return nil, fmt.Errorf("failed to load deck meta %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}

	var meta models.DeckMeta
	if err := json.Unmarshal([]byte(payload), &meta); err != nil {
		return nil, fmt.Errorf("failed to decode deck meta %s: %w", id, err)
	}
	return &meta, nil
}

// DeckBySlug resolves a human-readable slug to the full deck record.
func (s *Service) DeckBySlug(ctx context.Context, slug string) (*models.Deck, error) {
	uuid, found, err := s.st.Get(ctx, DeckSlugKey(strings.ToLower(slug)))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck slug %s: %w", slug, err)
	}
	if !found {
		return nil, nil
	}
	return s.DeckByUUID(ctx, uuid)
}

// DecksByType returns the metas of every deck with the given type.
func (s *Service) DecksByType(ctx context.Context, deckType string) ([]models.DeckMeta, error) {
	uuids, err := s.st.SMembers(ctx, DeckTypeKey(deckType))
	if err != nil {
		return nil, fmt.Errorf("failed to list decks of type %s: %w", deckType, err)
	}
	return s.loadDeckMetas(ctx, uuids)
}

// CommanderDecks returns the metas of every commander deck.
func (s *Service) CommanderDecks(ctx context.Context) ([]models.DeckMeta, error) {
	uuids, err := s.st.SMembers(ctx, DeckCommanderKey(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list commander decks: %w", err)
	}
	return s.loadDeckMetas(ctx, uuids)
}

// DecksContainingCard returns the metas of every deck containing the card.
func (s *Service) DecksContainingCard(ctx context.Context, cardUUID string) ([]models.DeckMeta, error) {
	uuids, err := s.st.SMembers(ctx, CardDecksKey(cardUUID))
	if err != nil {
		return nil, fmt.Errorf("failed to list decks containing %s: %w", cardUUID, err)
	}
	return s.loadDeckMetas(ctx, uuids)
}

func (s *Service) loadDeckMetas(ctx context.Context, uuids []string) ([]models.DeckMeta, error) {
	metas := make([]models.DeckMeta, 0, len(uuids))
	for _, uuid := range uuids {
		meta, err := s.DeckMetaByUUID(ctx, uuid)
		if err != nil {
			return nil, err
		}
		if meta == nil {
			s.logger.Warn("dangling deck reference", zap.String("uuid", uuid))
			continue
		}
		metas = append(metas, *meta)
	}
	return metas, nil
}

// Stats returns the outcome of the last indexing pass, or nil if no pass
// has completed.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	payload, found, err := s.st.Get(ctx, KeyStats)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	if !found {
		return nil, nil
	}

	var stats models.Stats
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &stats, nil
}
