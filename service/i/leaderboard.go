package i

import "context"

// LeaderboardEntry is a player's fastest escape.
type LeaderboardEntry struct {
	Username string
	Ticks    int
}

// Leaderboard ranks players by their fastest escape, fewest ticks first.
type Leaderboard interface {
	// Submit records an escape. Only an improvement on the player's best is kept.
	Submit(ctx context.Context, username string, ticks int) (bool, error)

	// Top returns up to limit entries, best first.
	Top(ctx context.Context, limit int64) ([]LeaderboardEntry, error)

	// Count returns the number of ranked players.
	Count(ctx context.Context) (int64, error)
}
