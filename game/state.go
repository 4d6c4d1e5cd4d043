package game

import "github.com/beka-birhanu/vinom-maze/game/maze"

// Status is the driver-side phase of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
)

// State is a read-only snapshot of a game, enough for a driver to draw it.
type State struct {
	Version   int64             `json:"version"`
	Algorithm string            `json:"algorithm"`
	Status    Status            `json:"status"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Start     maze.CellPosition `json:"start"`
	End       maze.CellPosition `json:"end"`
	Player    maze.CellPosition `json:"player"`
	Cells     [][]maze.Walls    `json:"cells"` // Cells is indexed [row][col].
}
