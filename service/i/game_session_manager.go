package i

import (
	"github.com/beka-birhanu/snowmaze/game"
	"github.com/beka-birhanu/snowmaze/maze"
	"github.com/google/uuid"
)

// GameSessionManager runs one chase per player and exposes it to the transport layer.
// Every call that names a session also names the player, who must own it.
type GameSessionManager interface {
	// NewSession starts a game for the player, replacing any game they already have.
	NewSession(playerID uuid.UUID) (uuid.UUID, error)

	// Input sets the direction the hero will take on its next move.
	Input(playerID, sessionID uuid.UUID, dir maze.Direction) error

	// Action applies an out of tick command and reports whether it had an effect.
	Action(playerID, sessionID uuid.UUID, action game.Action) (bool, error)

	// Snapshot returns the current state of the session.
	Snapshot(playerID, sessionID uuid.UUID) (game.Snapshot, error)

	// Restart replaces a finished session with a new game and returns its ID.
	Restart(playerID, sessionID uuid.UUID) (uuid.UUID, error)
}
