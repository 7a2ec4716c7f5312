package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog"
	"mtg-indexer/feature/catalog/models"
)

// filterKeys is the closed set of supported card filters.
var filterKeys = map[string]struct{}{
	"set":    {},
	"rarity": {},
	"color":  {},
}

// Service answers search and autocomplete requests.
type Service struct {
	st       store.Store
	catalog  *catalog.Service
	resolver *Resolver
	logger   *zap.Logger
}

// NewService creates a new search service.
func NewService(st store.Store, catalogSvc *catalog.Service, logger *zap.Logger) *Service {
	return &Service{
		st:       st,
		catalog:  catalogSvc,
		resolver: NewResolver(st),
		logger:   logger,
	}
}

// ScoredCard is a card hit with its fuzzy score.
type ScoredCard struct {
	models.Card
	Score float64 `json:"score"`
}

// SearchCards resolves a fuzzy query against the card index and applies
// the optional filters. Unknown filter keys are rejected.
func (s *Service) SearchCards(ctx context.Context, query string, limit int, filters map[string]string) ([]ScoredCard, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	for key := range filters {
		if _, ok := filterKeys[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, key)
		}
	}

	// Filters discard candidates after scoring, so over-fetch to keep the
	// page full.
	candidateLimit := limit
	if len(filters) > 0 {
		candidateLimit = limit * 5
	}

	matches, err := s.resolver.Resolve(ctx, Cards, query, candidateLimit)
	if err != nil {
		return nil, err
	}

	results := make([]ScoredCard, 0, limit)
	for _, m := range matches {
		card, err := s.catalog.CardByUUID(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		if card == nil {
			s.logger.Warn("dangling search posting", zap.String("uuid", m.ID))
			continue
		}
		if !matchesFilters(card, filters) {
			continue
		}
		results = append(results, ScoredCard{Card: *card, Score: m.Score})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// ScoredDeck is a deck hit with its fuzzy score.
type ScoredDeck struct {
	models.DeckMeta
	Score float64 `json:"score"`
}

// SearchDecks resolves a fuzzy query against the deck index.
func (s *Service) SearchDecks(ctx context.Context, query string, limit int) ([]ScoredDeck, error) {
	matches, err := s.resolver.Resolve(ctx, Decks, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]ScoredDeck, 0, len(matches))
	for _, m := range matches {
		meta, err := s.catalog.DeckMetaByUUID(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		if meta == nil {
			s.logger.Warn("dangling deck posting", zap.String("uuid", m.ID))
			continue
		}
		results = append(results, ScoredDeck{DeckMeta: *meta, Score: m.Score})
	}
	return results, nil
}

func matchesFilters(card *models.Card, filters map[string]string) bool {
	for key, want := range filters {
		switch key {
		case "set":
			if !strings.EqualFold(card.SetCode, want) {
				return false
			}
		case "rarity":
			if !strings.EqualFold(card.Rarity, want) {
				return false
			}
		case "color":
			found := false
			for _, c := range card.Colors {
				if strings.EqualFold(c, want) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}
