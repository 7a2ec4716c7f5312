package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mtg-indexer/core/store"
)

// Store is a mock implementation of store.Store.
type Store struct {
	mock.Mock
}

func (m *Store) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Store) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *Store) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *Store) SAdd(ctx context.Context, key string, members ...string) error {
	args := m.Called(ctx, key, members)
	return args.Error(0)
}

func (m *Store) SMembers(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	if members, ok := args.Get(0).([]string); ok {
		return members, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ZAdd(ctx context.Context, key string, score float64, member string) error {
	args := m.Called(ctx, key, score, member)
	return args.Error(0)
}

func (m *Store) ZRangeByScore(ctx context.Context, key string, min, max float64) ([]store.ScoredMember, error) {
	args := m.Called(ctx, key, min, max)
	if members, ok := args.Get(0).([]store.ScoredMember); ok {
		return members, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ZRevRange(ctx context.Context, key string, limit int64) ([]store.ScoredMember, error) {
	args := m.Called(ctx, key, limit)
	if members, ok := args.Get(0).([]store.ScoredMember); ok {
		return members, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) ZScore(ctx context.Context, key, member string) (float64, bool, error) {
	args := m.Called(ctx, key, member)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *Store) Batch() store.Batch {
	args := m.Called()
	if b, ok := args.Get(0).(store.Batch); ok {
		return b
	}
	return nil
}

func (m *Store) Clear(ctx context.Context, patterns ...string) (int64, error) {
	args := m.Called(ctx, patterns)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) Close() error {
	args := m.Called()
	return args.Error(0)
}
