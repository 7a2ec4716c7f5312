package catalog

import (
	"strconv"
	"strings"
)

// Store key layout. Every writer and reader goes through these builders so
// the namespaces stay consistent with what a pass clears.

const (
	// KeyStats holds the outcome of the last pass.
	KeyStats = "index:stats"
	// KeySetCodes holds the codes of every indexed set.
	KeySetCodes = "set:codes"
)

func CardKey(uuid string) string     { return "card:" + uuid }
func NameKey(name string) string     { return "name:" + strings.ToLower(name) }
func SetKey(code string) string      { return "set:" + code }
func SetCardsKey(code string) string { return "set:" + code + ":cards" }

func OracleKey(oracleID string) string { return "oracle:" + oracleID }
func UUIDOracleKey(uuid string) string { return "uuid:" + uuid + ":oracle" }

// OraclePrintingsKey collects every printing uuid of one oracle identity.
func OraclePrintingsKey(oracleID string) string { return "oracle:" + oracleID + ":printings" }
func TcgplayerKey(productID string) string      { return "tcgplayer:" + productID }

func SkuMetaKey(skuID uint64) string { return "sku:" + strconv.FormatUint(skuID, 10) + ":meta" }
func SkuCardKey(skuID uint64) string { return "sku:" + strconv.FormatUint(skuID, 10) + ":card" }
func CardSkusKey(uuid string) string { return "card:" + uuid + ":skus" }

func DeckKey(uuid string) string      { return "deck:" + uuid }
func DeckMetaKey(uuid string) string  { return "deck:meta:" + uuid }
func DeckSlugKey(slug string) string  { return "deck:slug:" + slug }
func DeckCardsKey(uuid string) string { return "deck:" + uuid + ":cards" }
func CardDecksKey(uuid string) string { return "card:" + uuid + ":decks" }

func DeckNameKey(name string) string     { return "deck:name:" + strings.ToLower(name) }
func DeckTypeKey(deckType string) string { return "deck:type:" + strings.ToLower(deckType) }
func DeckSetKey(code string) string      { return "deck:set:" + strings.ToLower(code) }
func DeckReleaseKey(date string) string  { return "deck:release:" + date }
func DeckYearKey(year string) string     { return "deck:year:" + year }
func DeckCommanderKey(isCommander bool) string {
	return "deck:commander:" + strconv.FormatBool(isCommander)
}
func DeckSizeKey(bucket string) string { return "deck:size:" + bucket }

func DeckCommandersKey(uuid string) string     { return "deck:" + uuid + ":commanders" }
func CommanderDecksKey(cardUUID string) string { return "commander:" + cardUUID + ":decks" }

// DeckSizeBucket classifies a deck by its total card count.
func DeckSizeBucket(totalCards int) string {
	switch {
	case totalCards <= 40:
		return "small"
	case totalCards <= 60:
		return "standard"
	case totalCards <= 99:
		return "large"
	default:
		return "edh_plus"
	}
}

// ClearPatterns covers every namespace a pass owns. Rebuilds clear these
// before writing.
func ClearPatterns() []string {
	return []string{
		"card:*", "name:*", "set:*", "oracle:*", "uuid:*", "tcgplayer:*",
		"sku:*", "deck:*", "commander:*", "price:*",
		"auto:prefix:*", "word:*", "ngram:*", "metaphone:*",
		"search:*", KeyStats,
	}
}
