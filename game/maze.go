package game

import "github.com/beka-birhanu/vinom-maze/game/maze"

// Board is the read/move surface of a maze that a navigator needs.
type Board interface {
	Width() int
	Height() int
	InBound(row, col int) bool
	HasWall(pos maze.CellPosition, d maze.Direction) bool
	End() maze.CellPosition
	Player() maze.CellPosition
	SetPlayer(pos maze.CellPosition) error
}

var _ Board = (*maze.Maze)(nil)
