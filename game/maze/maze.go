/*
Package maze provides tools for creating and navigating rectangular perfect mazes.

It defines the `Maze` structure, a grid of `Cell` objects whose walls are kept
in pairs: the wall between two neighbors is stored on both facing sides and is
always cleared on both at once.

Mazes are carved with randomized Prim's or randomized Kruskal's algorithm. All
random draws come from a single injectable source, so a seeded source yields
the same maze every time.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxDimension bounds both width and height of a maze.
	MaxDimension = 1000
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrOutOfBounds       = errors.New("position is out of the maze")
	ErrNotAdjacent       = errors.New("cells are not adjacent in the given direction")
)

// Option configures a Maze at construction time.
type Option func(*Maze)

// WithRand sets the random source used by the generators.
func WithRand(r RandSource) Option {
	return func(m *Maze) {
		if r != nil {
			m.rand = r
		}
	}
}

// WithSeed seeds the default random source. A zero seed uses the current time.
func WithSeed(seed int64) Option {
	return func(m *Maze) {
		m.rand = NewRand(seed)
	}
}

// Maze represents a rectangular grid of cells together with its start, end
// and the current player position.
type Maze struct {
	width     int          // Width of the maze (number of columns)
	height    int          // Height of the maze (number of rows)
	grid      [][]*Cell    // 2D grid of cells, indexed [row][col]
	start     CellPosition // Always (0,0)
	end       CellPosition // Always (width-1,height-1)
	player    CellPosition // Current player position
	rand      RandSource   // Source of every random draw
	algorithm Algorithm    // Algorithm of the last successful generation
	removed   int          // Internal walls carved since the last reset
}

// New initializes a fully walled maze of the given dimensions. It does not
// carve any passage; call Generate for that.
func New(width, height int, opts ...Option) (*Maze, error) {
	m := &Maze{}
	for _, opt := range opts {
		opt(m)
	}
	if m.rand == nil {
		m.rand = NewRand(0)
	}

	if err := m.Reset(width, height); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset replaces the grid with a fresh one where every wall is present and no
// cell is visited, and puts start, end and player back to their canonical
// positions.
func (m *Maze) Reset(width, height int) error {
	if min(width, height) < 1 || max(width, height) > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	grid := make([][]*Cell, height)
	for row := range grid {
		grid[row] = make([]*Cell, width)
		for col := range grid[row] {
			grid[row][col] = newCell()
		}
	}

	m.width = width
	m.height = height
	m.grid = grid
	m.start = CellPosition{Row: 0, Col: 0}
	m.end = CellPosition{Row: height - 1, Col: width - 1}
	m.player = m.start
	m.removed = 0
	return nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the start cell position.
func (m *Maze) Start() CellPosition { return m.start }

// End returns the end cell position.
func (m *Maze) End() CellPosition { return m.end }

// Player returns the current player position.
func (m *Maze) Player() CellPosition { return m.player }

// Algorithm returns the algorithm of the last generation.
func (m *Maze) Algorithm() Algorithm { return m.algorithm }

// RemovedWalls returns how many internal walls have been carved.
func (m *Maze) RemovedWalls() int { return m.removed }

// SetPlayer moves the player to pos, which must be inside the maze.
func (m *Maze) SetPlayer(pos CellPosition) error {
	if !m.InBound(pos.Row, pos.Col) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	m.player = pos
	return nil
}

// InBound checks whether row and col address a cell of the maze.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Cell returns the cell at pos.
func (m *Maze) Cell(pos CellPosition) (*Cell, error) {
	if !m.InBound(pos.Row, pos.Col) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, pos)
	}
	return m.grid[pos.Row][pos.Col], nil
}

// Walls returns a copy of the wall flags at pos.
func (m *Maze) Walls(pos CellPosition) (Walls, error) {
	c, err := m.Cell(pos)
	if err != nil {
		return Walls{}, err
	}
	return c.Walls(), nil
}

// HasWall reports whether the cell at pos has a wall on side d. Positions
// outside the maze are treated as solid.
func (m *Maze) HasWall(pos CellPosition, d Direction) bool {
	if !m.InBound(pos.Row, pos.Col) {
		return true
	}
	return m.grid[pos.Row][pos.Col].HasWall(d)
}

// Neighbors returns the in-bounds orthogonal neighbors of pos in a fixed
// left, right, top, bottom order.
func (m *Maze) Neighbors(pos CellPosition) []Edge {
	result := make([]Edge, 0, 4)
	for _, dir := range [...]Direction{Left, Right, Top, Bottom} {
		nbr := pos.Step(dir)
		if m.InBound(nbr.Row, nbr.Col) {
			result = append(result, Edge{From: pos, To: nbr, Direction: dir})
		}
	}
	return result
}

// RemoveWall carves the passage between a and b, where b is the neighbor of a
// in direction d. Both facing walls are cleared, or neither is.
func (m *Maze) RemoveWall(a, b CellPosition, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidDirection, d)
	}
	if !m.InBound(a.Row, a.Col) || !m.InBound(b.Row, b.Col) {
		return fmt.Errorf("%w: %s -> %s", ErrOutOfBounds, a, b)
	}
	if a.Step(d) != b {
		return fmt.Errorf("%w: %s %s %s", ErrNotAdjacent, a, d, b)
	}

	from, to := m.grid[a.Row][a.Col], m.grid[b.Row][b.Col]
	if from.HasWall(d) {
		m.removed++
	}
	from.clearWall(d)
	to.clearWall(d.Opposite())
	return nil
}

// openWall carves an edge produced by Neighbors or the Kruskal edge list.
// Such edges are adjacent and in bounds, so a failure is a generator bug.
func (m *Maze) openWall(e Edge) {
	if err := m.RemoveWall(e.From, e.To, e.Direction); err != nil {
		panic(fmt.Sprintf("maze: carving generated edge: %v", err))
	}
}

func (m *Maze) markAllVisited() {
	for _, row := range m.grid {
		for _, c := range row {
			c.Visited = true
		}
	}
}

// String provides a textual representation of the maze. The start cell is
// drawn as S, the end cell as E and the player as @.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < m.width; col++ {
		if m.grid[0][col].TopWall {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < m.height; row++ {
		// Cell rows
		if m.grid[row][0].LeftWall {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < m.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			switch pos {
			case m.player:
				output.WriteString(" @ ")
			case m.start:
				output.WriteString(" S ")
			case m.end:
				output.WriteString(" E ")
			default:
				output.WriteString("   ")
			}

			if m.grid[row][col].RightWall {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < m.width; col++ {
			if m.grid[row][col].BottomWall {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
