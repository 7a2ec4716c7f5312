// Package search owns the multi-modal name index and the fuzzy query
// resolver.
//
// # Projections
//
// Every indexed name is projected four ways into posting sets: exact-prefix
// postings (whole name and per-word, up to 30 leading characters), word
// tokens, sliding 3-grams and a simplified metaphone code. Cards and decks
// carry the same projections under separate namespaces.
//
// # Indexing
//
// The corpus is partitioned into fixed-size chunks. A bounded worker pool
// builds per-chunk partial postings with no shared state; the partials are
// folded in chunk-index order and persisted through bounded atomic batches,
// so a rebuild of the same corpus always produces the same index.
//
// # Querying
//
// Resolution is layered additive scoring in process: exact-prefix hits
// dominate (and fill the result alone when plentiful), word hits add a
// medium score, n-gram overlap adds its count once past a length-scaled
// cutoff, and phonetic hits add a small score. Ties break on ascending id.
// Queries before the first completed pass fail with ErrIndexNotBuilt.
//
// Autocomplete bypasses scoring entirely: it reads the prefix postings and
// ranks by static rarity weight.
package search
