package i

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

// GameSessionManager keeps independent single-player maze games.
type GameSessionManager interface {
	// NewSession generates a maze with alg and returns the new session's ID
	// and state. A zero alg selects the configured default.
	NewSession(alg maze.Algorithm) (uuid.UUID, game.State, error)

	// Regenerate replaces the session's maze, clearing any won state.
	Regenerate(id uuid.UUID, alg maze.Algorithm) (game.State, error)

	// Move moves the session's player and reports whether the end was reached.
	Move(id uuid.UUID, d maze.Direction) (bool, game.State, error)

	// Snapshot returns the session's current state.
	Snapshot(id uuid.UUID) (game.State, error)

	// Render returns an ASCII drawing of the session's maze.
	Render(id uuid.UUID) (string, error)

	// End drops the session.
	End(id uuid.UUID) error

	// ExpireIdle drops sessions left idle past their lifetime as of now and
	// returns how many were dropped.
	ExpireIdle(now time.Time) int

	// TTL returns how long a session may stay idle.
	TTL() time.Duration
}
