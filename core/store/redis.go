package store

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// clearScanCount is the SCAN page size used when clearing namespaces.
const clearScanCount = 1000

type redisStore struct {
	rdb *goredis.Client
}

// NewRedis creates the production Store backed by Redis and verifies the
// connection with a ping.
func NewRedis(cfg Config) (Store, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 5
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: time.Duration(timeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisStore{rdb: rdb}, nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) SAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	if err := s.rdb.SAdd(ctx, key, args...).Err(); err != nil {
		return fmt.Errorf("sadd %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) SMembers(ctx context.Context, key string) ([]string, error) {
	members, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", key, err)
	}
	return members, nil
}

func (s *redisStore) ZAdd(ctx context.Context, key string, score float64, member string) error {
	if err := s.rdb.ZAdd(ctx, key, goredis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("zadd %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) ZRangeByScore(ctx context.Context, key string, min, max float64) ([]ScoredMember, error) {
	zs, err := s.rdb.ZRangeByScoreWithScores(ctx, key, &goredis.ZRangeBy{
		Min: fmt.Sprintf("%f", min),
		Max: fmt.Sprintf("%f", max),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("zrangebyscore %s: %w", key, err)
	}
	return toScoredMembers(zs), nil
}

func (s *redisStore) ZRevRange(ctx context.Context, key string, limit int64) ([]ScoredMember, error) {
	stop := limit - 1
	if limit <= 0 {
		stop = -1
	}
	zs, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("zrevrange %s: %w", key, err)
	}
	return toScoredMembers(zs), nil
}

func (s *redisStore) ZScore(ctx context.Context, key, member string) (float64, bool, error) {
	score, err := s.rdb.ZScore(ctx, key, member).Result()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("zscore %s: %w", key, err)
	}
	return score, true, nil
}

func (s *redisStore) Batch() Batch {
	return &redisBatch{pipe: s.rdb.TxPipeline()}
}

func (s *redisStore) Clear(ctx context.Context, patterns ...string) (int64, error) {
	var deleted int64
	for _, pattern := range patterns {
		iter := s.rdb.Scan(ctx, 0, pattern, clearScanCount).Iterator()
		keys := make([]string, 0, clearScanCount)
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
			if len(keys) == clearScanCount {
				n, err := s.rdb.Del(ctx, keys...).Result()
				if err != nil {
					return deleted, fmt.Errorf("del %s: %w", pattern, err)
				}
				deleted += n
				keys = keys[:0]
			}
		}
		if err := iter.Err(); err != nil {
			return deleted, fmt.Errorf("scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			n, err := s.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("del %s: %w", pattern, err)
			}
			deleted += n
		}
	}
	return deleted, nil
}

func (s *redisStore) Close() error {
	return s.rdb.Close()
}

// redisBatch queues writes on a transactional pipeline; Exec makes the
// whole batch visible at once.
type redisBatch struct {
	pipe goredis.Pipeliner
	n    int
}

func (b *redisBatch) Set(key, value string) {
	b.pipe.Set(context.Background(), key, value, 0)
	b.n++
}

func (b *redisBatch) SetNX(key, value string) {
	b.pipe.SetNX(context.Background(), key, value, 0)
	b.n++
}

func (b *redisBatch) SAdd(key string, members ...string) {
	if len(members) == 0 {
		return
	}
	args := make([]interface{}, len(members))
	for i, m := range members {
		args[i] = m
	}
	b.pipe.SAdd(context.Background(), key, args...)
	b.n++
}

func (b *redisBatch) ZAdd(key string, score float64, member string) {
	b.pipe.ZAdd(context.Background(), key, goredis.Z{Score: score, Member: member})
	b.n++
}

func (b *redisBatch) Len() int {
	return b.n
}

func (b *redisBatch) Commit(ctx context.Context) error {
	if b.n == 0 {
		return nil
	}
	if _, err := b.pipe.Exec(ctx); err != nil {
		return fmt.Errorf("batch exec: %w", err)
	}
	return nil
}

func toScoredMembers(zs []goredis.Z) []ScoredMember {
	out := make([]ScoredMember, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		out = append(out, ScoredMember{Member: member, Score: z.Score})
	}
	return out
}
