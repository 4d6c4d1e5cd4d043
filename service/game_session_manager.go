package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMazeWidth  = 40
	defaultMazeHeight = 30
	defaultAlgorithm  = maze.Prims
	defaultSessionTTL = 5 * time.Minute
)

var (
	ErrSessionNotFound = errors.New("game session not found")
)

// session is a live game and the last time a client touched it.
type session struct {
	game     *game.Game
	lastSeen atomic.Int64 // Unix nanoseconds.
}

func (s *session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *session) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastSeen.Load()))
}

// GameSessionManager holds in-memory game sessions keyed by a random ID.
// Sessions are never persisted; idle ones are dropped by ExpireIdle.
type GameSessionManager struct {
	sessions         map[uuid.UUID]*session
	width            int
	height           int
	defaultAlgorithm maze.Algorithm
	ttl              time.Duration
	seeds            *rand.Rand // Derives one seed per session.
	logger           i.Logger
	sync.RWMutex
}

// Config configures a GameSessionManager. Zero values fall back to defaults.
type Config struct {
	Width            int
	Height           int
	Seed             int64 // Seed of the per-session seed sequence; 0 uses the clock.
	DefaultAlgorithm maze.Algorithm
	SessionTTL       time.Duration // Idle lifetime of a session; 0 means five minutes.
	Logger           i.Logger
}

var _ i.GameSessionManager = (*GameSessionManager)(nil)

// NewGameSessionManager creates a session manager from c.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c == nil {
		c = &Config{}
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	width, height := c.Width, c.Height
	if width == 0 {
		width = defaultMazeWidth
	}
	if height == 0 {
		height = defaultMazeHeight
	}
	if min(width, height) < 1 || max(width, height) > maze.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, width, height)
	}

	alg := c.DefaultAlgorithm
	if alg == 0 {
		alg = defaultAlgorithm
	}

	ttl := c.SessionTTL
	if ttl == 0 {
		ttl = defaultSessionTTL
	}
	if ttl < 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}

	return &GameSessionManager{
		sessions:         make(map[uuid.UUID]*session),
		width:            width,
		height:           height,
		defaultAlgorithm: alg,
		ttl:              ttl,
		seeds:            maze.NewRand(c.Seed),
		logger:           c.Logger,
	}, nil
}

// NewSession implements i.GameSessionManager.
func (g *GameSessionManager) NewSession(alg maze.Algorithm) (uuid.UUID, game.State, error) {
	if alg == 0 {
		alg = g.defaultAlgorithm
	}

	g.Lock()
	defer g.Unlock()

	gs, err := game.New(g.width, g.height, maze.WithSeed(g.nextSeed()))
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating game: %s", err))
		return uuid.Nil, game.State{}, err
	}
	if err := gs.Generate(alg); err != nil {
		g.logger.Error(fmt.Sprintf("generating maze for a new game: %s", err))
		return uuid.Nil, game.State{}, err
	}

	sessionID := g.saveSession(gs)
	state, err := gs.Snapshot()
	if err != nil {
		return uuid.Nil, game.State{}, err
	}

	g.logger.Info(fmt.Sprintf("started new game %s: %dx%d %s", sessionID, g.width, g.height, alg))
	return sessionID, state, nil
}

// Regenerate implements i.GameSessionManager.
func (g *GameSessionManager) Regenerate(id uuid.UUID, alg maze.Algorithm) (game.State, error) {
	if alg == 0 {
		alg = g.defaultAlgorithm
	}

	gs, err := g.session(id)
	if err != nil {
		return game.State{}, err
	}
	if err := gs.Generate(alg); err != nil {
		g.logger.Error(fmt.Sprintf("regenerating game %s: %s", id, err))
		return game.State{}, err
	}

	g.logger.Info(fmt.Sprintf("regenerated game %s with %s", id, alg))
	return gs.Snapshot()
}

// Move implements i.GameSessionManager.
func (g *GameSessionManager) Move(id uuid.UUID, d maze.Direction) (bool, game.State, error) {
	gs, err := g.session(id)
	if err != nil {
		return false, game.State{}, err
	}

	reached, state, err := gs.MoveAndSnapshot(d)
	if err != nil {
		return reached, game.State{}, err
	}
	if reached {
		g.logger.Info(fmt.Sprintf("game %s won", id))
	}
	return reached, state, nil
}

// Snapshot implements i.GameSessionManager.
func (g *GameSessionManager) Snapshot(id uuid.UUID) (game.State, error) {
	gs, err := g.session(id)
	if err != nil {
		return game.State{}, err
	}
	return gs.Snapshot()
}

// Render implements i.GameSessionManager.
func (g *GameSessionManager) Render(id uuid.UUID) (string, error) {
	gs, err := g.session(id)
	if err != nil {
		return "", err
	}
	return gs.String(), nil
}

// End implements i.GameSessionManager.
func (g *GameSessionManager) End(id uuid.UUID) error {
	g.Lock()
	defer g.Unlock()

	if _, ok := g.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(g.sessions, id)
	g.logger.Info(fmt.Sprintf("ended game %s", id))
	return nil
}

// ExpireIdle implements i.GameSessionManager. It drops every session not
// touched within the TTL before now and returns how many were dropped.
func (g *GameSessionManager) ExpireIdle(now time.Time) int {
	g.Lock()
	defer g.Unlock()

	expired := 0
	for id, s := range g.sessions {
		if idle := s.idleSince(now); idle > g.ttl {
			delete(g.sessions, id)
			expired++
			g.logger.Info(fmt.Sprintf("expired game %s after %s idle", id, idle.Round(time.Second)))
		}
	}
	return expired
}

// TTL returns the idle lifetime of a session.
func (g *GameSessionManager) TTL() time.Duration {
	return g.ttl
}

// Count returns the number of live sessions.
func (g *GameSessionManager) Count() int {
	g.RLock()
	defer g.RUnlock()
	return len(g.sessions)
}

func (g *GameSessionManager) session(id uuid.UUID) (*game.Game, error) {
	g.RLock()
	defer g.RUnlock()

	s, ok := g.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(time.Now())
	return s.game, nil
}

// saveSession stores gs under a fresh ID. Callers hold the write lock.
func (g *GameSessionManager) saveSession(gs *game.Game) uuid.UUID {
	sessionID := uuid.New()
	for {
		if _, ok := g.sessions[sessionID]; !ok {
			break
		}
		sessionID = uuid.New()
	}

	s := &session{game: gs}
	s.touch(time.Now())
	g.sessions[sessionID] = s
	return sessionID
}

// nextSeed draws a non-zero seed for a new session. Callers hold the write lock.
func (g *GameSessionManager) nextSeed() int64 {
	seed := g.seeds.Int63()
	if seed == 0 {
		seed = 1
	}
	return seed
}
