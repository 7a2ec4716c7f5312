// Package store defines the persistent store contract the indexing and
// query engines are written against, together with its implementations.
//
// The contract is deliberately small: single-value get/set, unordered sets,
// score-ordered sorted sets, and an atomic batch that commits a sequence of
// writes as one unit. The core never depends on any one store's wire
// protocol; it only consumes these primitives.
//
// # Implementations
//
//   - NewRedis: the production implementation backed by Redis via
//     github.com/redis/go-redis/v9. Batches map onto transactional
//     pipelines, so a batch is either fully visible or not at all.
//   - NewMemory: a map-backed implementation with the same semantics,
//     intended for tests and local experimentation.
//
// # Usage
//
//	st, err := store.NewRedis(cfg)
//	...
//	b := st.Batch()
//	b.Set("card:"+uuid, payload)
//	b.SAdd("name:"+name, uuid)
//	err = b.Commit(ctx)
package store
