package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mtg-indexer/core/store"
)

// Autocomplete looks up the prefix postings directly and ranks the hits by
// static rarity weight. No fuzzy scoring is involved.
func (s *Service) Autocomplete(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	p := strings.ToLower(strings.TrimSpace(prefix))
	if p == "" {
		return nil, nil
	}

	uuids, err := s.st.SMembers(ctx, Cards.PrefixKey(p))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch autocomplete postings: %w", err)
	}
	if len(uuids) == 0 {
		return nil, nil
	}

	ranked := make([]store.ScoredMember, 0, len(uuids))
	for _, uuid := range uuids {
		weight, found, err := s.st.ZScore(ctx, KeyPopularity, uuid)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch popularity: %w", err)
		}
		if !found {
			weight = 1
		}
		ranked = append(ranked, store.ScoredMember{Member: uuid, Score: weight})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Member < ranked[j].Member
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	seen := make(map[string]struct{})
	for _, sm := range ranked {
		card, err := s.catalog.CardByUUID(ctx, sm.Member)
		if err != nil {
			return nil, err
		}
		if card == nil {
			continue
		}
		if _, dup := seen[card.Name]; dup {
			continue
		}
		seen[card.Name] = struct{}{}
		names = append(names, card.Name)
	}
	return names, nil
}
