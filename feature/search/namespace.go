package search

// Namespace scopes posting keys so cards and decks keep separate indexes
// with identical projections.
type Namespace struct {
	prefix string
}

var (
	// Cards is the card posting namespace.
	Cards = Namespace{prefix: ""}
	// Decks is the deck posting namespace.
	Decks = Namespace{prefix: "deck:"}
)

func (n Namespace) WordKey(word string) string      { return n.prefix + "word:" + word }
func (n Namespace) PrefixKey(p string) string       { return n.prefix + "auto:prefix:" + p }
func (n Namespace) NGramKey(gram string) string     { return n.prefix + "ngram:" + gram }
func (n Namespace) MetaphoneKey(code string) string { return n.prefix + "metaphone:" + code }

const (
	// KeyReady marks that an indexing pass has completed.
	KeyReady = "search:ready"
	// KeyPopularity ranks card uuids by static rarity weight for
	// autocomplete ordering.
	KeyPopularity = "search:popularity"
)

// RarityWeight returns the static autocomplete weight of a rarity.
func RarityWeight(rarity string) float64 {
	switch rarity {
	case "mythic":
		return 10
	case "rare":
		return 8
	case "uncommon":
		return 5
	case "common":
		return 3
	default:
		return 1
	}
}
