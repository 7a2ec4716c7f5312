package store

import (
	"context"
	"path"
	"sort"
	"sync"
)

// Memory is an in-process Store implementation with the same semantics as
// the Redis one. It backs tests and local experimentation; it is safe for
// concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	sets   map[string]map[string]struct{}
	sorted map[string]map[string]float64
	closed bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
		sets:   make(map[string]map[string]struct{}),
		sorted: make(map[string]map[string]float64),
	}
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.values[key]
	return val, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) SAdd(ctx context.Context, key string, members ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sadd(key, members...)
	return nil
}

func (m *Memory) SMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, ok := m.sets[key]
	if !ok {
		return nil, nil
	}
	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	// Stable order keeps tests and early-return query paths deterministic.
	sort.Strings(members)
	return members, nil
}

func (m *Memory) ZAdd(ctx context.Context, key string, score float64, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zadd(key, score, member)
	return nil
}

func (m *Memory) ZRangeByScore(ctx context.Context, key string, min, max float64) ([]ScoredMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []ScoredMember
	for member, score := range m.sorted[key] {
		if score >= min && score <= max {
			out = append(out, ScoredMember{Member: member, Score: score})
		}
	}
	sortScored(out, false)
	return out, nil
}

func (m *Memory) ZRevRange(ctx context.Context, key string, limit int64) ([]ScoredMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ScoredMember, 0, len(m.sorted[key]))
	for member, score := range m.sorted[key] {
		out = append(out, ScoredMember{Member: member, Score: score})
	}
	sortScored(out, true)
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) ZScore(ctx context.Context, key, member string) (float64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	score, ok := m.sorted[key][member]
	return score, ok, nil
}

func (m *Memory) Batch() Batch {
	return &memoryBatch{store: m}
}

func (m *Memory) Clear(ctx context.Context, patterns ...string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for _, pattern := range patterns {
		for key := range m.values {
			if matched, _ := path.Match(pattern, key); matched {
				delete(m.values, key)
				deleted++
			}
		}
		for key := range m.sets {
			if matched, _ := path.Match(pattern, key); matched {
				delete(m.sets, key)
				deleted++
			}
		}
		for key := range m.sorted {
			if matched, _ := path.Match(pattern, key); matched {
				delete(m.sorted, key)
				deleted++
			}
		}
	}
	return deleted, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Keys returns all keys currently held, sorted. Test helper.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values)+len(m.sets)+len(m.sorted))
	for k := range m.values {
		keys = append(keys, k)
	}
	for k := range m.sets {
		keys = append(keys, k)
	}
	for k := range m.sorted {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Memory) sadd(key string, members ...string) {
	set, ok := m.sets[key]
	if !ok {
		set = make(map[string]struct{})
		m.sets[key] = set
	}
	for _, member := range members {
		set[member] = struct{}{}
	}
}

func (m *Memory) zadd(key string, score float64, member string) {
	zset, ok := m.sorted[key]
	if !ok {
		zset = make(map[string]float64)
		m.sorted[key] = zset
	}
	zset[member] = score
}

// memoryBatch buffers writes and applies them under one lock acquisition,
// mirroring the all-or-nothing visibility of the Redis transaction.
type memoryBatch struct {
	store *Memory
	ops   []func(*Memory)
}

func (b *memoryBatch) Set(key, value string) {
	b.ops = append(b.ops, func(m *Memory) { m.values[key] = value })
}

func (b *memoryBatch) SetNX(key, value string) {
	b.ops = append(b.ops, func(m *Memory) {
		if _, exists := m.values[key]; !exists {
			m.values[key] = value
		}
	})
}

func (b *memoryBatch) SAdd(key string, members ...string) {
	if len(members) == 0 {
		return
	}
	copied := append([]string(nil), members...)
	b.ops = append(b.ops, func(m *Memory) { m.sadd(key, copied...) })
}

func (b *memoryBatch) ZAdd(key string, score float64, member string) {
	b.ops = append(b.ops, func(m *Memory) { m.zadd(key, score, member) })
}

func (b *memoryBatch) Len() int {
	return len(b.ops)
}

func (b *memoryBatch) Commit(ctx context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	for _, op := range b.ops {
		op(b.store)
	}
	b.ops = nil
	return nil
}

func sortScored(members []ScoredMember, desc bool) {
	sort.Slice(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			if desc {
				return members[i].Score > members[j].Score
			}
			return members[i].Score < members[j].Score
		}
		return members[i].Member < members[j].Member
	})
}
