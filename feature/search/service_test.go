package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog"
	"mtg-indexer/feature/catalog/models"
)

func serviceCards() []models.Card {
	return []models.Card{
		{UUID: "bolt-1", Name: "Lightning Bolt", SetCode: "LEA", Rarity: "common", Colors: []string{"R"}},
		{UUID: "bolt-2", Name: "Lightning Bolt", SetCode: "M10", Rarity: "rare", Colors: []string{"R"}},
		{UUID: "helix-1", Name: "Lightning Helix", SetCode: "RAV", Rarity: "uncommon", Colors: []string{"R", "W"}},
		{UUID: "strike-1", Name: "Lightning Strike", SetCode: "M14", Rarity: "common", Colors: []string{"R"}},
	}
}

func seededSearch(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory()
	log := zap.NewNop()

	require.NoError(t, catalog.NewWriter(st, log, 0).WriteCards(ctx, serviceCards()))

	ix := NewIndexer(st, log, Config{})
	require.NoError(t, ix.IndexCards(ctx, serviceCards()))
	require.NoError(t, ix.MarkReady(ctx))

	return NewService(st, catalog.NewService(st, log), log), st
}

func TestSearchCards(t *testing.T) {
	svc, _ := seededSearch(t)
	ctx := context.Background()

	t.Run("ReturnsScoredCards", func(t *testing.T) {
		results, err := svc.SearchCards(ctx, "lightning bolt", 10, nil)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Lightning Bolt", results[0].Name)
		assert.Greater(t, results[0].Score, 0.0)
	})

	t.Run("RespectsLimit", func(t *testing.T) {
		results, err := svc.SearchCards(ctx, "lightning", 2, nil)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("SetFilter", func(t *testing.T) {
		results, err := svc.SearchCards(ctx, "lightning bolt", 10, map[string]string{"set": "m10"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "bolt-2", results[0].UUID)
	})

	t.Run("RarityFilter", func(t *testing.T) {
		results, err := svc.SearchCards(ctx, "lightning", 10, map[string]string{"rarity": "uncommon"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "helix-1", results[0].UUID)
	})

	t.Run("ColorFilter", func(t *testing.T) {
		results, err := svc.SearchCards(ctx, "lightning", 10, map[string]string{"color": "w"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "helix-1", results[0].UUID)
	})

	t.Run("UnknownFilterRejected", func(t *testing.T) {
		_, err := svc.SearchCards(ctx, "lightning", 10, map[string]string{"cmc": "3"})
		assert.ErrorIs(t, err, ErrUnknownFilter)
	})

	t.Run("BeforeIndexBuilt", func(t *testing.T) {
		st := store.NewMemory()
		log := zap.NewNop()
		cold := NewService(st, catalog.NewService(st, log), log)
		_, err := cold.SearchCards(ctx, "lightning", 10, nil)
		assert.ErrorIs(t, err, ErrIndexNotBuilt)
	})
}

func TestSearchDecks(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	log := zap.NewNop()

	deck := &models.Deck{
		UUID:     models.DeckUUID("CMR", "Arm for Battle"),
		Name:     "Arm for Battle",
		Code:     "CMR",
		DeckType: "Commander Deck",
	}
	require.NoError(t, catalog.NewWriter(st, log, 0).WriteDecks(ctx, []*models.Deck{deck}))

	ix := NewIndexer(st, log, Config{})
	require.NoError(t, ix.IndexDecks(ctx, []*models.Deck{deck}))
	require.NoError(t, ix.MarkReady(ctx))

	svc := NewService(st, catalog.NewService(st, log), log)

	results, err := svc.SearchDecks(ctx, "arm for battle", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Arm for Battle", results[0].Name)
	assert.Greater(t, results[0].Score, 0.0)
}

func TestAutocomplete(t *testing.T) {
	svc, _ := seededSearch(t)
	ctx := context.Background()

	t.Run("RanksByRarityWeight", func(t *testing.T) {
		names, err := svc.Autocomplete(ctx, "lightning", 10)
		require.NoError(t, err)
		// bolt-2 is rare (8), helix-1 uncommon (5), the commons weigh 3.
		// The duplicate printing of Lightning Bolt collapses to one name.
		assert.Equal(t, []string{"Lightning Bolt", "Lightning Helix", "Lightning Strike"}, names)
	})

	t.Run("RespectsLimit", func(t *testing.T) {
		names, err := svc.Autocomplete(ctx, "lightning", 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"Lightning Bolt"}, names)
	})

	t.Run("EmptyPrefix", func(t *testing.T) {
		names, err := svc.Autocomplete(ctx, "  ", 10)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("NoMatches", func(t *testing.T) {
		names, err := svc.Autocomplete(ctx, "zzzz", 10)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
