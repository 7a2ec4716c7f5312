package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog/models"
)

func testCard() models.Card {
	return models.Card{
		UUID:               "bolt-1",
		Name:               "Lightning Bolt",
		SetCode:            "LEA",
		SetName:            "Limited Edition Alpha",
		Rarity:             "common",
		ScryfallOracleID:   "oracle-bolt",
		TcgplayerProductID: "1001",
		TcgplayerSkus: []models.SKU{
			{Condition: "NEAR MINT", Language: "ENGLISH", Printing: "NON FOIL", ProductID: 1001, SkuID: 9002},
		},
	}
}

func TestWriterWriteCards(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	w := NewWriter(m, zap.NewNop(), 0)

	require.NoError(t, w.WriteCards(ctx, []models.Card{testCard()}))

	payload, found, err := m.Get(ctx, "card:bolt-1")
	require.NoError(t, err)
	require.True(t, found)
	var card models.Card
	require.NoError(t, json.Unmarshal([]byte(payload), &card))
	assert.Equal(t, "Lightning Bolt", card.Name)

	members, err := m.SMembers(ctx, "name:lightning bolt")
	require.NoError(t, err)
	assert.Equal(t, []string{"bolt-1"}, members)

	members, err = m.SMembers(ctx, "set:LEA:cards")
	require.NoError(t, err)
	assert.Equal(t, []string{"bolt-1"}, members)

	uuid, found, err := m.Get(ctx, "oracle:oracle-bolt")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "bolt-1", uuid)

	uuid, found, err = m.Get(ctx, "tcgplayer:1001")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "bolt-1", uuid)

	uuid, found, err = m.Get(ctx, "sku:9002:card")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "bolt-1", uuid)

	metaPayload, found, err := m.Get(ctx, "sku:9002:meta")
	require.NoError(t, err)
	require.True(t, found)
	var meta skuMeta
	require.NoError(t, json.Unmarshal([]byte(metaPayload), &meta))
	assert.Equal(t, "NEAR MINT", meta.Condition)
	assert.False(t, meta.Foil)

	members, err = m.SMembers(ctx, "card:bolt-1:skus")
	require.NoError(t, err)
	assert.Equal(t, []string{"9002"}, members)
}

func TestWriterOracleFirstWriterWins(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	w := NewWriter(m, zap.NewNop(), 0)

	first := testCard()
	second := testCard()
	second.UUID = "bolt-2"
	second.SetCode = "M10"

	require.NoError(t, w.WriteCards(ctx, []models.Card{first, second}))

	uuid, found, err := m.Get(ctx, "oracle:oracle-bolt")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "bolt-1", uuid)

	// Both printings keep their own oracle back-reference.
	oracle, found, err := m.Get(ctx, "uuid:bolt-2:oracle")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "oracle-bolt", oracle)

	// And both land in the printings set.
	printings, err := m.SMembers(ctx, "oracle:oracle-bolt:printings")
	require.NoError(t, err)
	assert.Equal(t, []string{"bolt-1", "bolt-2"}, printings)
}

func TestWriterWriteDecks(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	w := NewWriter(m, zap.NewNop(), 0)

	deck := BuildDeck(testDeckData())
	require.NoError(t, w.WriteDecks(ctx, []*models.Deck{deck}))

	uuid, found, err := m.Get(ctx, "deck:slug:tst_test_deck")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, deck.UUID, uuid)

	members, err := m.SMembers(ctx, "deck:type:commander deck")
	require.NoError(t, err)
	assert.Equal(t, []string{deck.UUID}, members)

	members, err = m.SMembers(ctx, "deck:year:2021")
	require.NoError(t, err)
	assert.Equal(t, []string{deck.UUID}, members)

	members, err = m.SMembers(ctx, "deck:commander:true")
	require.NoError(t, err)
	assert.Equal(t, []string{deck.UUID}, members)

	// 1 commander + 99 filler copies = 100 total, edh_plus size bucket.
	members, err = m.SMembers(ctx, "deck:size:edh_plus")
	require.NoError(t, err)
	assert.Equal(t, []string{deck.UUID}, members)

	score, found, err := m.ZScore(ctx, "deck:"+deck.UUID+":cards", "main-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 99.0, score)

	members, err = m.SMembers(ctx, "card:display-cmd:decks")
	require.NoError(t, err)
	assert.Equal(t, []string{deck.UUID}, members)

	members, err = m.SMembers(ctx, "commander:display-cmd:decks")
	require.NoError(t, err)
	assert.Equal(t, []string{deck.UUID}, members)
}

func TestWriterBatchesAreBounded(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	// Tiny batch bound forces multiple commits within one call.
	w := NewWriter(m, zap.NewNop(), 3)

	cards := make([]models.Card, 10)
	for i := range cards {
		c := testCard()
		c.UUID = c.UUID + string(rune('a'+i))
		c.TcgplayerSkus = nil
		c.ScryfallOracleID = ""
		c.TcgplayerProductID = ""
		cards[i] = c
	}

	require.NoError(t, w.WriteCards(ctx, cards))
	for i := range cards {
		_, found, err := m.Get(ctx, "card:"+cards[i].UUID)
		require.NoError(t, err)
		assert.True(t, found)
	}
}

func TestDeckSizeBucketBoundaries(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "small"},
		{40, "small"},
		{41, "standard"},
		{60, "standard"},
		{61, "large"},
		{99, "large"},
		{100, "edh_plus"},
		{250, "edh_plus"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeckSizeBucket(tt.total), "total=%d", tt.total)
	}
}
