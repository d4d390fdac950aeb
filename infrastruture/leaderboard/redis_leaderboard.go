// Package leaderboard keeps the fastest escapes in a Redis sorted set.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/snowmaze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultKey    = "snowmaze:leaderboard"
	unlockTimeout = time.Second
)

var (
	ErrInvalidTicks = errors.New("escape ticks must be positive")
	ErrInvalidLimit = errors.New("limit must be positive")
)

// RedisLeaderboard scores each username by its best escape in ticks, lower is better.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
}

// NewRedisLeaderboard initializes a leaderboard stored under key.
func NewRedisLeaderboard(client *redis.Client, key string) (*RedisLeaderboard, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if key == "" {
		key = DefaultKey
	}
	pool := goredis.NewPool(client)
	return &RedisLeaderboard{
		client: client,
		locker: redsync.New(pool),
		key:    key,
	}, nil
}

// Submit stores ticks for username unless the stored best is already as fast.
// A per user lock keeps concurrent submissions from overwriting a better score.
func (l *RedisLeaderboard) Submit(ctx context.Context, username string, ticks int) (bool, error) {
	if ticks <= 0 {
		return false, ErrInvalidTicks
	}

	mutex := l.locker.NewMutex(l.key + ":lock:" + username)
	if err := mutex.LockContext(ctx); err != nil {
		return false, err
	}
	defer func() {
		// Unlock even when the submit context is spent.
		unlockCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		_, _ = mutex.UnlockContext(unlockCtx)
	}()

	current, err := l.client.ZScore(ctx, l.key, username).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return false, err
	case int(current) <= ticks:
		return false, nil
	}

	if err := l.client.ZAdd(ctx, l.key, redis.Z{Score: float64(ticks), Member: username}).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Top returns up to limit entries with the fewest ticks first.
func (l *RedisLeaderboard) Top(ctx context.Context, limit int64) ([]i.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	members, err := l.client.ZRangeWithScores(ctx, l.key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		name, ok := m.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected leaderboard member %v", m.Member)
		}
		entries = append(entries, i.LeaderboardEntry{Username: name, Ticks: int(m.Score)})
	}
	return entries, nil
}

// Count returns the number of ranked players.
func (l *RedisLeaderboard) Count(ctx context.Context) (int64, error) {
	return l.client.ZCard(ctx, l.key).Result()
}
