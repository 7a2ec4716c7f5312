package store

import "context"

// ScoredMember pairs a sorted-set member with its score.
type ScoredMember struct {
	Member string
	Score  float64
}

// Store is the persistent store contract consumed by the indexing engine,
// the fuzzy query resolver and the price reconciliation engine.
//
// All operations take a context and return explicit errors; connectivity
// failures are surfaced to the caller and never retried here.
type Store interface {
	// Ping verifies connectivity.
	Ping(ctx context.Context) error

	// Get returns the value stored at key. The boolean reports whether the
	// key exists; a missing key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// SAdd adds members to the unordered set at key. Adding an existing
	// member is a no-op (posting is idempotent).
	SAdd(ctx context.Context, key string, members ...string) error

	// SMembers returns all members of the set at key. A missing key yields
	// an empty slice.
	SMembers(ctx context.Context, key string) ([]string, error)

	// ZAdd adds a member with the given score to the sorted set at key,
	// updating the score if the member already exists.
	ZAdd(ctx context.Context, key string, score float64, member string) error

	// ZRangeByScore returns members whose score lies in [min, max],
	// ascending by score.
	ZRangeByScore(ctx context.Context, key string, min, max float64) ([]ScoredMember, error)

	// ZRevRange returns up to limit members ordered by descending score.
	// limit <= 0 means no limit.
	ZRevRange(ctx context.Context, key string, limit int64) ([]ScoredMember, error)

	// ZScore returns the score of member in the sorted set at key. The
	// boolean reports whether the member exists.
	ZScore(ctx context.Context, key, member string) (float64, bool, error)

	// Batch starts a new atomic write batch. Writes queued on the batch
	// become visible only when Commit succeeds, all at once.
	Batch() Batch

	// Clear removes every key matching any of the glob patterns and
	// returns the number of keys deleted.
	Clear(ctx context.Context, patterns ...string) (int64, error)

	// Close releases the underlying connection resources.
	Close() error
}

// Batch accumulates writes and commits them as a single atomic unit.
// Implementations must guarantee the batch is never partially visible:
// it commits as a whole or the error is returned and nothing is applied.
type Batch interface {
	// Set queues a plain value write.
	Set(key, value string)

	// SetNX queues a value write that only applies if the key is absent.
	// Used for first-writer-wins identity cross-references.
	SetNX(key, value string)

	// SAdd queues set-member additions.
	SAdd(key string, members ...string)

	// ZAdd queues a sorted-set addition.
	ZAdd(key string, score float64, member string)

	// Len reports the number of queued commands.
	Len() int

	// Commit applies all queued writes atomically. The batch must not be
	// reused after Commit.
	Commit(ctx context.Context) error
}
