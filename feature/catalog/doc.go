// Package catalog owns the typed corpus: cards, sets, preconstructed decks
// and their cross-references in the store.
//
// # Responsibilities
//
//   - Loading the bulk JSON dumps (AllPrintings, Tcgplayer SKUs, deck files)
//     from a local directory or an object storage bucket. Malformed files and
//     records are logged and skipped, never abort a pass.
//   - Persisting entity records and cross-references (exact name, set
//     membership, oracle identity, Tcgplayer product and SKU mappings, deck
//     facets and composition) through bounded atomic batches.
//   - Serving lookups over those records for the HTTP facade.
//
// Search postings are owned by the search feature and price data by the
// pricing feature; this package only writes what identifies and relates
// entities.
package catalog
