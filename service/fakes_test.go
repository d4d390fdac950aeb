package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/beka-birhanu/snowmaze/identity"
	"github.com/beka-birhanu/snowmaze/service/i"
	"github.com/google/uuid"
)

type result struct {
	id      uuid.UUID
	escaped bool
	ticks   int
}

type memoryUserRepo struct {
	users   map[uuid.UUID]*identity.User
	results []result
	sync.Mutex
}

func newMemoryUserRepo(users ...*identity.User) *memoryUserRepo {
	r := &memoryUserRepo{users: make(map[uuid.UUID]*identity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memoryUserRepo) Save(user *identity.User) error {
	r.Lock()
	defer r.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) ByID(id uuid.UUID) (*identity.User, error) {
	r.Lock()
	defer r.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (r *memoryUserRepo) ByUsername(username string) (*identity.User, error) {
	r.Lock()
	defer r.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *memoryUserRepo) RecordResult(id uuid.UUID, escaped bool, ticks int) error {
	r.Lock()
	defer r.Unlock()
	r.results = append(r.results, result{id: id, escaped: escaped, ticks: ticks})
	return nil
}

func (r *memoryUserRepo) recorded() []result {
	r.Lock()
	defer r.Unlock()
	return append([]result(nil), r.results...)
}

type memoryLeaderboard struct {
	best map[string]int
	sync.Mutex
}

func newMemoryLeaderboard() *memoryLeaderboard {
	return &memoryLeaderboard{best: make(map[string]int)}
}

func (l *memoryLeaderboard) Submit(_ context.Context, username string, ticks int) (bool, error) {
	l.Lock()
	defer l.Unlock()
	if old, ok := l.best[username]; ok && old <= ticks {
		return false, nil
	}
	l.best[username] = ticks
	return true, nil
}

func (l *memoryLeaderboard) Top(_ context.Context, limit int64) ([]i.LeaderboardEntry, error) {
	l.Lock()
	defer l.Unlock()
	entries := make([]i.LeaderboardEntry, 0, len(l.best))
	for name, ticks := range l.best {
		entries = append(entries, i.LeaderboardEntry{Username: name, Ticks: ticks})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Ticks < entries[b].Ticks })
	if int64(len(entries)) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (l *memoryLeaderboard) Count(context.Context) (int64, error) {
	l.Lock()
	defer l.Unlock()
	return int64(len(l.best)), nil
}

func (l *memoryLeaderboard) entries() map[string]int {
	l.Lock()
	defer l.Unlock()
	out := make(map[string]int, len(l.best))
	for k, v := range l.best {
		out[k] = v
	}
	return out
}

type discardLogger struct{}

func (discardLogger) Info(string)    {}
func (discardLogger) Warning(string) {}
func (discardLogger) Error(string)   {}

type staticTokenizer struct{}

func (staticTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	return "token-" + claims["username"].(string), nil
}

func (staticTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not supported")
}
