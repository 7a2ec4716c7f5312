package models

// Source-file envelopes. These mirror the upstream bulk dump layouts;
// unknown fields are ignored on decode.

// Meta carries the dump date and version stamped on every bulk file.
type Meta struct {
	Date    string `json:"date"`
	Version string `json:"version"`
}

// AllPrintingsFile is the top-level AllPrintings.json envelope.
type AllPrintingsFile struct {
	Meta Meta                 `json:"meta"`
	Data map[string]SourceSet `json:"data"`
}

// TcgplayerSkusFile is the top-level TcgplayerSkus.json envelope,
// keyed by card uuid.
type TcgplayerSkusFile struct {
	Meta Meta             `json:"meta"`
	Data map[string][]SKU `json:"data"`
}

// SourceSet is one set entry of AllPrintings.json.
type SourceSet struct {
	BaseSetSize  int          `json:"baseSetSize"`
	Block        string       `json:"block,omitempty"`
	Cards        []SourceCard `json:"cards"`
	Code         string       `json:"code"`
	IsFoilOnly   bool         `json:"isFoilOnly"`
	IsOnlineOnly bool         `json:"isOnlineOnly"`
	Name         string       `json:"name"`
	ParentCode   string       `json:"parentCode,omitempty"`
	ReleaseDate  string       `json:"releaseDate"`
	TotalSetSize int          `json:"totalSetSize"`
	SetType      string       `json:"type"`
}

// SourceCard is one printing entry of a set or deck board. Only the
// fields the indexer consumes are declared.
type SourceCard struct {
	Availability  []string     `json:"availability"`
	ColorIdentity []string     `json:"colorIdentity"`
	Colors        []string     `json:"colors"`
	Count         int          `json:"count"`
	Defense       string       `json:"defense,omitempty"`
	Finishes      []string     `json:"finishes"`
	FlavorText    string       `json:"flavorText,omitempty"`
	HasFoil       bool         `json:"hasFoil"`
	HasNonFoil    bool         `json:"hasNonFoil"`
	Identifiers   Identifiers  `json:"identifiers"`
	IsPromo       bool         `json:"isPromo"`
	IsReserved    bool         `json:"isReserved"`
	Layout        string       `json:"layout"`
	Loyalty       string       `json:"loyalty,omitempty"`
	ManaCost      string       `json:"manaCost,omitempty"`
	ManaValue     float64      `json:"manaValue"`
	Name          string       `json:"name"`
	Number        string       `json:"number"`
	Power         string       `json:"power,omitempty"`
	PurchaseUrls  PurchaseUrls `json:"purchaseUrls"`
	Rarity        string       `json:"rarity"`
	SetCode       string       `json:"setCode"`
	Subtypes      []string     `json:"subtypes"`
	Supertypes    []string     `json:"supertypes"`
	Text          string       `json:"text,omitempty"`
	Toughness     string       `json:"toughness,omitempty"`
	Types         []string     `json:"types"`
	UUID          string       `json:"uuid"`
}

// CountOrOne returns the board count of the printing, defaulting to 1.
func (c SourceCard) CountOrOne() int {
	if c.Count <= 0 {
		return 1
	}
	return c.Count
}

// Identifiers is the per-printing external id block.
type Identifiers struct {
	ScryfallID         string `json:"scryfallId,omitempty"`
	ScryfallOracleID   string `json:"scryfallOracleId,omitempty"`
	TcgplayerProductID string `json:"tcgplayerProductId,omitempty"`
}

// DeckFile is the top-level envelope of a preconstructed deck dump.
type DeckFile struct {
	Meta Meta     `json:"meta"`
	Data DeckData `json:"data"`
}

// DeckData is the deck body of a deck dump.
type DeckData struct {
	Name             string       `json:"name"`
	Code             string       `json:"code"`
	DeckType         string       `json:"type"`
	ReleaseDate      string       `json:"releaseDate"`
	Commander        []SourceCard `json:"commander"`
	DisplayCommander []SourceCard `json:"displayCommander"`
	MainBoard        []SourceCard `json:"mainBoard"`
	SideBoard        []SourceCard `json:"sideBoard"`
}
