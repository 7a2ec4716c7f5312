// Package pricing reconciles market price records with card SKUs and
// computes deck valuations.
//
// Price records arrive as a pre-cleaned JSON file keyed by TCGplayer
// product id. Resolution walks card -> product id -> SKUs -> record,
// preferring the Near Mint English SKU and the record matching its
// condition. Missing data at any step is an unpriced outcome, never an
// error.
//
// The writer persists per-SKU latest prices, timestamp-scored price
// history, price-range buckets and deck value facets. The service reads
// them back for the HTTP facade.
package pricing
