package models_test

import (
	"testing"

	"mtg-indexer/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestDeckUUIDIsDeterministic(t *testing.T) {
	a := models.DeckUUID("CMR", "Arm for Battle")
	b := models.DeckUUID("CMR", "Arm for Battle")
	c := models.DeckUUID("CMR", "Reap the Tides")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, len(a) > len("deck_"))
	assert.Equal(t, "deck_", a[:5])
}

func TestDeckSlug(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		deckName string
		want     string
	}{
		{"Simple", "CMR", "Arm for Battle", "cmr_arm_for_battle"},
		{"Slash", "SLD", "Night/Day", "sld_night_day"},
		{"SpacedCode", "C 21", "Lorehold", "c_21_lorehold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.DeckSlug(tt.code, tt.deckName))
		})
	}
}

func TestSKUConditionSynonyms(t *testing.T) {
	tests := []struct {
		name string
		sku  models.SKU
		nm   bool
		en   bool
	}{
		{"Spelled", models.SKU{Condition: "Near Mint", Language: "English"}, true, true},
		{"Abbreviated", models.SKU{Condition: "NM", Language: "english"}, true, true},
		{"NumericCodes", models.SKU{Condition: "1", Language: "1"}, true, true},
		{"Played", models.SKU{Condition: "Lightly Played", Language: "Japanese"}, false, false},
		{"Empty", models.SKU{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nm, tt.sku.IsNearMint())
			assert.Equal(t, tt.en, tt.sku.IsEnglish())
		})
	}
}

func TestSKUDefaults(t *testing.T) {
	var s models.SKU
	assert.Equal(t, "Near Mint", s.ConditionOrDefault())
	assert.Equal(t, "English", s.LanguageOrDefault())
	assert.False(t, s.IsFoil())

	s = models.SKU{Condition: "Lightly Played", Language: "Japanese", Printing: "Foil"}
	assert.Equal(t, "Lightly Played", s.ConditionOrDefault())
	assert.Equal(t, "Japanese", s.LanguageOrDefault())
	assert.True(t, s.IsFoil())
}

func TestDeckAllCardsOrder(t *testing.T) {
	d := models.Deck{
		Commanders: []models.DeckCard{{UUID: "cmd"}},
		MainBoard:  []models.DeckCard{{UUID: "main1"}, {UUID: "main2"}},
		SideBoard:  []models.DeckCard{{UUID: "side"}},
	}

	all := d.AllCards()
	assert.Equal(t, []string{"cmd", "main1", "main2", "side"}, []string{
		all[0].UUID, all[1].UUID, all[2].UUID, all[3].UUID,
	})
}

func TestSourceCardCountOrOne(t *testing.T) {
	assert.Equal(t, 1, models.SourceCard{}.CountOrOne())
	assert.Equal(t, 3, models.SourceCard{Count: 3}.CountOrOne())
}
