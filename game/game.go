package game

import (
	"errors"
	"sync"

	"github.com/beka-birhanu/vinom-maze/game/maze"
)

// Game-related errors.
var (
	ErrGameWon = errors.New("game is already won")
)

// Game represents a single-player maze game. It owns the maze, the navigator
// over it and the latched won state: Playing becomes Won when a move reaches
// the end, and only a new generation returns it to Playing.
type Game struct {
	maze         *maze.Maze // The maze structure.
	navigator    *Navigator // Moves the player through the maze.
	generated    bool       // Whether Generate has succeeded at least once.
	status       Status     // Playing or Won.
	version      int64      // Game state version, bumped on every change.
	sync.RWMutex            // Read-Write lock for synchronizing access.
}

// New creates a game over a width x height grid. Nothing is carved until the
// first call to Generate.
func New(width, height int, opts ...maze.Option) (*Game, error) {
	m, err := maze.New(width, height, opts...)
	if err != nil {
		return nil, err
	}

	return &Game{
		maze:   m,
		status: StatusPlaying,
	}, nil
}

// Generate carves a brand-new maze with alg and puts the player back on the
// start cell. It is allowed in any state.
func (g *Game) Generate(alg maze.Algorithm) error {
	g.Lock()
	defer g.Unlock()

	if err := g.maze.Generate(alg); err != nil {
		return err
	}

	nav, err := NewNavigator(g.maze)
	if err != nil {
		return err
	}

	g.navigator = nav
	g.generated = true
	g.status = StatusPlaying
	g.version++
	return nil
}

// Move moves the player one cell in direction d and reports whether the end
// was reached. Moves are rejected before the first generation and once won.
func (g *Game) Move(d maze.Direction) (bool, error) {
	g.Lock()
	defer g.Unlock()
	return g.move(d)
}

// MoveAndSnapshot moves like Move and returns the state right after the move,
// with no other change to the game in between.
func (g *Game) MoveAndSnapshot(d maze.Direction) (bool, State, error) {
	g.Lock()
	defer g.Unlock()

	reached, err := g.move(d)
	if err != nil {
		return reached, State{}, err
	}
	return reached, g.snapshot(), nil
}

func (g *Game) move(d maze.Direction) (bool, error) {
	if !g.generated {
		return false, ErrMazeNotGenerated
	}
	if g.status == StatusWon {
		return true, ErrGameWon
	}

	before := g.navigator.Position()
	reached, err := g.navigator.Move(d)
	if err != nil {
		return false, err
	}

	if g.navigator.Position() != before {
		g.version++
	}
	if reached {
		g.status = StatusWon
	}
	return reached, nil
}

// Won reports whether the game is in the won state.
func (g *Game) Won() bool {
	g.RLock()
	defer g.RUnlock()
	return g.status == StatusWon
}

// Snapshot creates a snapshot of the current game state.
func (g *Game) Snapshot() (State, error) {
	g.RLock()
	defer g.RUnlock()

	if !g.generated {
		return State{}, ErrMazeNotGenerated
	}
	return g.snapshot(), nil
}

// snapshot copies the state of a generated game. Callers hold the lock.
func (g *Game) snapshot() State {
	cells := make([][]maze.Walls, g.maze.Height())
	for row := range cells {
		cells[row] = make([]maze.Walls, g.maze.Width())
		for col := range cells[row] {
			cells[row][col], _ = g.maze.Walls(maze.CellPosition{Row: row, Col: col})
		}
	}

	return State{
		Version:   g.version,
		Algorithm: g.maze.Algorithm().String(),
		Status:    g.status,
		Width:     g.maze.Width(),
		Height:    g.maze.Height(),
		Start:     g.maze.Start(),
		End:       g.maze.End(),
		Player:    g.maze.Player(),
		Cells:     cells,
	}
}

// String renders the maze as ASCII art.
func (g *Game) String() string {
	g.RLock()
	defer g.RUnlock()
	return g.maze.String()
}
