package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog/models"
)

func testCards() []models.Card {
	return []models.Card{
		{UUID: "bolt-1", Name: "Lightning Bolt", Rarity: "common"},
		{UUID: "helix-1", Name: "Lightning Helix", Rarity: "uncommon"},
		{UUID: "strike-1", Name: "Lightning Strike", Rarity: "common"},
		{UUID: "jace-1", Name: "Jace, the Mind Sculptor", Rarity: "mythic"},
		{UUID: "snap-1", Name: "Snapcaster Mage", Rarity: "rare"},
	}
}

func indexedStore(t *testing.T, cfg Config) *store.Memory {
	t.Helper()
	st := store.NewMemory()
	ix := NewIndexer(st, zap.NewNop(), cfg)
	require.NoError(t, ix.IndexCards(context.Background(), testCards()))
	require.NoError(t, ix.MarkReady(context.Background()))
	return st
}

func TestIndexCardsProjections(t *testing.T) {
	st := indexedStore(t, Config{})
	ctx := context.Background()

	t.Run("WordPostings", func(t *testing.T) {
		ids, err := st.SMembers(ctx, Cards.WordKey("lightning"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"bolt-1", "helix-1", "strike-1"}, ids)
	})

	t.Run("NamePrefixPostings", func(t *testing.T) {
		ids, err := st.SMembers(ctx, Cards.PrefixKey("lightning b"))
		require.NoError(t, err)
		assert.Equal(t, []string{"bolt-1"}, ids)
	})

	t.Run("WordPrefixPostings", func(t *testing.T) {
		// "bolt" is a word of "Lightning Bolt", so its prefixes post too.
		ids, err := st.SMembers(ctx, Cards.PrefixKey("bo"))
		require.NoError(t, err)
		assert.Equal(t, []string{"bolt-1"}, ids)
	})

	t.Run("NGramPostings", func(t *testing.T) {
		ids, err := st.SMembers(ctx, Cards.NGramKey("olt"))
		require.NoError(t, err)
		assert.Equal(t, []string{"bolt-1"}, ids)
	})

	t.Run("MetaphonePostings", func(t *testing.T) {
		ids, err := st.SMembers(ctx, Cards.MetaphoneKey(Metaphone("Lightning Bolt")))
		require.NoError(t, err)
		assert.Equal(t, []string{"bolt-1"}, ids)
	})

	t.Run("PopularityFollowsRarity", func(t *testing.T) {
		score, found, err := st.ZScore(ctx, KeyPopularity, "jace-1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 10.0, score)

		score, found, err = st.ZScore(ctx, KeyPopularity, "bolt-1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 3.0, score)
	})

	t.Run("ReadyMarker", func(t *testing.T) {
		_, found, err := st.Get(ctx, KeyReady)
		require.NoError(t, err)
		assert.True(t, found)
	})
}

func TestIndexDeterministicAcrossChunking(t *testing.T) {
	ctx := context.Background()

	a := indexedStore(t, Config{ChunkSize: 1, Workers: 4})
	b := indexedStore(t, Config{ChunkSize: 1000, Workers: 1, BatchSize: 2})

	keysA := a.Keys()
	keysB := b.Keys()
	require.Equal(t, keysA, keysB)

	for _, key := range keysA {
		if key == KeyReady {
			continue
		}
		idsA, err := a.SMembers(ctx, key)
		require.NoError(t, err)
		idsB, err := b.SMembers(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, idsA, idsB, key)
	}
}

func TestIndexDecksUsesDeckNamespace(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	ix := NewIndexer(st, zap.NewNop(), Config{})

	decks := []*models.Deck{{UUID: "deck_abc", Name: "Arm for Battle"}}
	require.NoError(t, ix.IndexDecks(ctx, decks))

	ids, err := st.SMembers(ctx, Decks.WordKey("battle"))
	require.NoError(t, err)
	assert.Equal(t, []string{"deck_abc"}, ids)

	// Decks carry no popularity weight.
	_, found, err := st.ZScore(ctx, KeyPopularity, "deck_abc")
	require.NoError(t, err)
	assert.False(t, found)

	// Card namespace stays untouched.
	ids, err = st.SMembers(ctx, Cards.WordKey("battle"))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIndexEmptyCorpusIsNoop(t *testing.T) {
	st := store.NewMemory()
	ix := NewIndexer(st, zap.NewNop(), Config{})
	require.NoError(t, ix.Index(context.Background(), Cards, nil))
	assert.Empty(t, st.Keys())
}
