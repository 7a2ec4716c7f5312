package catalog

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog/models"
)

func seededService(t *testing.T) (*Service, *models.Deck) {
	t.Helper()
	ctx := context.Background()
	m := store.NewMemory()
	w := NewWriter(m, zap.NewNop(), 0)

	require.NoError(t, w.WriteSets(ctx, []models.Set{
		{Code: "LEA", Name: "Limited Edition Alpha", ReleaseDate: "1993-08-05", SetType: "core", TotalCards: 295},
	}))
	require.NoError(t, w.WriteCards(ctx, []models.Card{testCard()}))

	deck := BuildDeck(testDeckData())
	require.NoError(t, w.WriteDecks(ctx, []*models.Deck{deck}))
	require.NoError(t, w.WriteStats(ctx, models.Stats{TotalCards: 1, ProcessedCards: 1, Version: "5.2.2"}))

	return NewService(m, zap.NewNop()), deck
}

func TestServiceCardLookups(t *testing.T) {
	ctx := context.Background()
	svc, _ := seededService(t)

	card, err := svc.CardByUUID(ctx, "bolt-1")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, "Lightning Bolt", card.Name)

	missing, err := svc.CardByUUID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byName, err := svc.CardsByName(ctx, "Lightning Bolt")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "bolt-1", byName[0].UUID)

	byOracle, err := svc.CardByOracle(ctx, "oracle-bolt")
	require.NoError(t, err)
	require.NotNil(t, byOracle)
	assert.Equal(t, "bolt-1", byOracle.UUID)

	printings, err := svc.PrintingsByOracle(ctx, "oracle-bolt")
	require.NoError(t, err)
	require.Len(t, printings, 1)
	assert.Equal(t, "bolt-1", printings[0].UUID)

	bySku, err := svc.CardBySkuID(ctx, 9002)
	require.NoError(t, err)
	require.NotNil(t, bySku)
	assert.Equal(t, "bolt-1", bySku.UUID)
}

func TestServiceSetLookups(t *testing.T) {
	ctx := context.Background()
	svc, _ := seededService(t)

	set, err := svc.SetByCode(ctx, "LEA")
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Equal(t, "Limited Edition Alpha", set.Name)

	sets, err := svc.Sets(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 1)

	uuids, err := svc.CardsInSet(ctx, "LEA")
	require.NoError(t, err)
	assert.Equal(t, []string{"bolt-1"}, uuids)
}

func TestServiceDeckLookups(t *testing.T) {
	ctx := context.Background()
	svc, deck := seededService(t)

	// The deck_ prefix is optional on lookups.
	got, err := svc.DeckByUUID(ctx, deck.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Test Deck", got.Name)

	bare := deck.UUID[len("deck_"):]
	got, err = svc.DeckByUUID(ctx, bare)
	require.NoError(t, err)
	require.NotNil(t, got)

	meta, err := svc.DeckMetaByUUID(ctx, deck.UUID)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "tst_test_deck", meta.Slug)

	bySlug, err := svc.DeckBySlug(ctx, "tst_test_deck")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, deck.UUID, bySlug.UUID)

	byType, err := svc.DecksByType(ctx, "Commander Deck")
	require.NoError(t, err)
	require.Len(t, byType, 1)

	commanders, err := svc.CommanderDecks(ctx)
	require.NoError(t, err)
	require.Len(t, commanders, 1)

	containing, err := svc.DecksContainingCard(ctx, "main-1")
	require.NoError(t, err)
	require.Len(t, containing, 1)
	assert.Equal(t, deck.UUID, containing[0].UUID)
}

func TestServiceStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := seededService(t)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.ProcessedCards)

	empty := NewService(store.NewMemory(), zap.NewNop())
	stats, err = empty.Stats(ctx)
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestHandlerRoutes(t *testing.T) {
	svc, deck := seededService(t)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	t.Run("GetCard", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/cards/bolt-1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "Lightning Bolt")
	})

	t.Run("GetCardNotFound", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/cards/unknown", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("GetDeckMeta", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/decks/"+deck.UUID, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "tst_test_deck")
	})

	t.Run("GetSets", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/sets/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("GetStats", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/stats", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
