package maze

import (
	"fmt"
	"strings"
)

// Direction names one side of a cell.
type Direction int

// Directions a wall can face or a player can move in.
const (
	Top Direction = iota
	Right
	Bottom
	Left

	Up   = Top    // Up is the movement name of Top.
	Down = Bottom // Down is the movement name of Bottom.
)

// offsets maps each direction to the row/col delta of the neighbor it faces.
var offsets = [...]CellPosition{
	Top:    {Row: -1, Col: 0},
	Right:  {Row: 0, Col: 1},
	Bottom: {Row: 1, Col: 0},
	Left:   {Row: 0, Col: -1},
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= Top && d <= Left
}

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	switch d {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Offset returns the row/col delta of a step in direction d.
func (d Direction) Offset() CellPosition {
	if !d.Valid() {
		return CellPosition{}
	}
	return offsets[d]
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps wall names (top, right, bottom, left) and movement
// names (up, down) onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "up", "north":
		return Top, nil
	case "right", "east":
		return Right, nil
	case "bottom", "down", "south":
		return Bottom, nil
	case "left", "west":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Cell represents a single cell in a maze grid.
// Walls start present; Visited is only meaningful while a generator runs.
type Cell struct {
	TopWall    bool // TopWall indicates whether there is a wall on the top side of the cell.
	RightWall  bool // RightWall indicates whether there is a wall on the right side of the cell.
	BottomWall bool // BottomWall indicates whether there is a wall on the bottom side of the cell.
	LeftWall   bool // LeftWall indicates whether there is a wall on the left side of the cell.
	Visited    bool // Visited marks the cell as reached by the generator.
}

func newCell() *Cell {
	return &Cell{
		TopWall:    true,
		RightWall:  true,
		BottomWall: true,
		LeftWall:   true,
	}
}

// HasWall returns true if there is a wall on side d of the cell.
// Invalid directions are reported as walled.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case Top:
		return c.TopWall
	case Right:
		return c.RightWall
	case Bottom:
		return c.BottomWall
	case Left:
		return c.LeftWall
	}
	return true
}

// clearWall removes the wall on side d of this cell only.
func (c *Cell) clearWall(d Direction) {
	switch d {
	case Top:
		c.TopWall = false
	case Right:
		c.RightWall = false
	case Bottom:
		c.BottomWall = false
	case Left:
		c.LeftWall = false
	}
}

// Walls returns the four wall flags in top, right, bottom, left order.
func (c *Cell) Walls() Walls {
	return Walls{Top: c.TopWall, Right: c.RightWall, Bottom: c.BottomWall, Left: c.LeftWall}
}

// Walls is a read-only copy of a cell's wall flags.
type Walls struct {
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Step returns the position one cell away in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	off := d.Offset()
	return CellPosition{Row: p.Row + off.Row, Col: p.Col + off.Col}
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Edge is a wall between two adjacent cells, seen from From.
type Edge struct {
	From      CellPosition // Cell the direction is relative to
	To        CellPosition // Adjacent cell
	Direction Direction    // Side of From that faces To
}
