package models

import (
	"strings"

	"github.com/google/uuid"
)

// Card is the flattened card record kept in the store. It carries the
// fields queries actually need, not the full upstream printing.
type Card struct {
	UUID               string       `json:"uuid"`
	Name               string       `json:"name"`
	SetCode            string       `json:"set_code"`
	SetName            string       `json:"set_name"`
	CollectorNumber    string       `json:"collector_number"`
	Rarity             string       `json:"rarity"`
	ManaValue          float64      `json:"mana_value"`
	ManaCost           string       `json:"mana_cost,omitempty"`
	Colors             []string     `json:"colors"`
	ColorIdentity      []string     `json:"color_identity"`
	Types              []string     `json:"types"`
	Subtypes           []string     `json:"subtypes"`
	Supertypes         []string     `json:"supertypes"`
	Power              string       `json:"power,omitempty"`
	Toughness          string       `json:"toughness,omitempty"`
	Loyalty            string       `json:"loyalty,omitempty"`
	Defense            string       `json:"defense,omitempty"`
	Text               string       `json:"text,omitempty"`
	FlavorText         string       `json:"flavor_text,omitempty"`
	Layout             string       `json:"layout"`
	Availability       []string     `json:"availability"`
	Finishes           []string     `json:"finishes"`
	HasFoil            bool         `json:"has_foil"`
	HasNonFoil         bool         `json:"has_non_foil"`
	IsReserved         bool         `json:"is_reserved"`
	IsPromo            bool         `json:"is_promo"`
	ReleaseDate        string       `json:"release_date"`
	ScryfallOracleID   string       `json:"scryfall_oracle_id,omitempty"`
	ScryfallID         string       `json:"scryfall_id,omitempty"`
	TcgplayerProductID string       `json:"tcgplayer_product_id,omitempty"`
	TcgplayerSkus      []SKU        `json:"tcgplayer_skus"`
	PurchaseUrls       PurchaseUrls `json:"purchase_urls"`
}

// SKU is a single Tcgplayer stock keeping unit for a product.
// Condition, language and printing may be absent in the source data.
type SKU struct {
	Condition string `json:"condition,omitempty"`
	Language  string `json:"language,omitempty"`
	Printing  string `json:"printing,omitempty"`
	ProductID uint64 `json:"productId"`
	SkuID     uint64 `json:"skuId"`
}

// IsNearMint reports whether the SKU condition means Near Mint.
// The feeds use "near mint", "nm" and the numeric code "1" interchangeably.
func (s SKU) IsNearMint() bool {
	return strings.EqualFold(s.Condition, "near mint") ||
		strings.EqualFold(s.Condition, "nm") ||
		s.Condition == "1"
}

// IsEnglish reports whether the SKU language means English ("english" or "1").
func (s SKU) IsEnglish() bool {
	return strings.EqualFold(s.Language, "english") || s.Language == "1"
}

// IsFoil reports whether the SKU printing is foil.
func (s SKU) IsFoil() bool {
	return s.Printing == "Foil"
}

// ConditionOrDefault returns the SKU condition, defaulting to Near Mint.
func (s SKU) ConditionOrDefault() string {
	if s.Condition == "" {
		return "Near Mint"
	}
	return s.Condition
}

// LanguageOrDefault returns the SKU language, defaulting to English.
func (s SKU) LanguageOrDefault() string {
	if s.Language == "" {
		return "English"
	}
	return s.Language
}

// PurchaseUrls carries the marketplace links of a printing.
type PurchaseUrls struct {
	CardKingdom       string `json:"cardKingdom,omitempty"`
	CardKingdomEtched string `json:"cardKingdomEtched,omitempty"`
	CardKingdomFoil   string `json:"cardKingdomFoil,omitempty"`
	Cardmarket        string `json:"cardmarket,omitempty"`
	Tcgplayer         string `json:"tcgplayer,omitempty"`
	TcgplayerEtched   string `json:"tcgplayerEtched,omitempty"`
}

// Set is the summary record kept per set.
type Set struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
	SetType     string `json:"set_type"`
	TotalCards  int    `json:"total_cards"`
	BaseSetSize int    `json:"base_set_size"`
}

// Deck is a preconstructed deck record.
type Deck struct {
	UUID           string     `json:"uuid"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	DeckType       string     `json:"deck_type"`
	ReleaseDate    string     `json:"release_date"`
	IsCommander    bool       `json:"is_commander"`
	TotalCards     int        `json:"total_cards"`
	UniqueCards    int        `json:"unique_cards"`
	Commanders     []DeckCard `json:"commanders"`
	MainBoard      []DeckCard `json:"main_board"`
	SideBoard      []DeckCard `json:"side_board"`
	EstimatedValue *DeckValue `json:"estimated_value"`
}

// AllCards returns every board entry of the deck in a single slice,
// commanders first, then main board, then side board.
func (d *Deck) AllCards() []DeckCard {
	all := make([]DeckCard, 0, len(d.Commanders)+len(d.MainBoard)+len(d.SideBoard))
	all = append(all, d.Commanders...)
	all = append(all, d.MainBoard...)
	all = append(all, d.SideBoard...)
	return all
}

// DeckCard is one board entry of a deck.
type DeckCard struct {
	UUID               string `json:"uuid"`
	Name               string `json:"name"`
	Count              int    `json:"count"`
	IsFoil             bool   `json:"is_foil"`
	SetCode            string `json:"set_code"`
	TcgplayerProductID string `json:"tcgplayer_product_id,omitempty"`
}

// DeckValue is the estimated worth of a deck. Each tier accumulates
// independently; priced/unpriced tallies are copy-count weighted.
type DeckValue struct {
	MarketTotal         float64 `json:"market_total"`
	DirectTotal         float64 `json:"direct_total"`
	LowTotal            float64 `json:"low_total"`
	CardsWithPricing    int     `json:"cards_with_pricing"`
	CardsWithoutPricing int     `json:"cards_without_pricing"`
}

// DeckMeta is the lightweight deck record kept for browsing, without the
// full board lists.
type DeckMeta struct {
	UUID           string     `json:"uuid"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	DeckType       string     `json:"type"`
	ReleaseDate    string     `json:"release_date"`
	IsCommander    bool       `json:"is_commander"`
	TotalCards     int        `json:"total_cards"`
	UniqueCards    int        `json:"unique_cards"`
	Slug           string     `json:"slug"`
	EstimatedValue *DeckValue `json:"estimated_value"`
}

// Stats describes the outcome of the last indexing pass.
type Stats struct {
	TotalSets      int    `json:"total_sets"`
	TotalCards     int    `json:"total_cards"`
	ProcessedCards int    `json:"processed_cards"`
	TotalDecks     int    `json:"total_decks"`
	ProcessedDecks int    `json:"processed_decks"`
	LastUpdate     string `json:"last_update"`
	Source         string `json:"source"`
	Version        string `json:"version"`
}

// DeckUUID derives the stable identity of a deck from its code and name.
// The same (code, name) pair always yields the same id.
func DeckUUID(code, name string) string {
	u := uuid.NewSHA1(uuid.NameSpaceDNS, []byte(code+"_"+name))
	return "deck_" + u.String()
}

// DeckSlug builds the human-readable lookup key for a deck.
func DeckSlug(code, name string) string {
	c := strings.ReplaceAll(strings.ToLower(code), " ", "_")
	n := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	n = strings.ReplaceAll(n, "/", "_")
	return c + "_" + n
}
