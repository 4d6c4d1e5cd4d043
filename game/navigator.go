package game

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/game/maze"
)

var ErrMazeNotGenerated = errors.New("maze has not been generated")

// Navigator moves the single player through a board's passages.
// It keeps no won state; AtEnd is evaluated on every call.
type Navigator struct {
	board Board
}

// NewNavigator returns a navigator over b.
func NewNavigator(b Board) (*Navigator, error) {
	if b == nil {
		return nil, ErrMazeNotGenerated
	}
	return &Navigator{board: b}, nil
}

// Move steps the player one cell in direction d when no wall blocks it.
// A blocked move is a silent no-op. It reports whether the player stands on
// the end cell afterwards.
func (n *Navigator) Move(d maze.Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w: %s", maze.ErrInvalidDirection, d)
	}

	cur := n.board.Player()
	next := cur.Step(d)
	if !n.board.HasWall(cur, d) && n.board.InBound(next.Row, next.Col) {
		if err := n.board.SetPlayer(next); err != nil {
			return false, err
		}
	}

	return n.AtEnd(), nil
}

// AtEnd reports whether the player is on the end cell.
func (n *Navigator) AtEnd() bool {
	return n.board.Player() == n.board.End()
}

// Position returns the player's current cell.
func (n *Navigator) Position() maze.CellPosition {
	return n.board.Player()
}
