// Package ingest orchestrates a full indexing pass: load the corpus, clear
// the previous namespaces, persist entities and cross-references, build the
// search postings, value the decks and record the pass stats.
//
// A pass is clear-then-rebuild. Per-record problems are logged and skipped
// upstream; a failed store batch fails the whole pass.
package ingest
