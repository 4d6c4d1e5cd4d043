// Package gameapi provides structures and utilities for playing mazes over HTTP.
package gameapi

import (
	"github.com/beka-birhanu/vinom-maze/game"
)

// GenerateRequest selects the algorithm for a new or regenerated maze.
// An empty algorithm uses the server default.
type GenerateRequest struct {
	Algorithm string `json:"algorithm"`
}

// MoveRequest moves the player one cell.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// SessionResponse is returned when a maze session is created.
type SessionResponse struct {
	ID    string     `json:"id"`
	State game.State `json:"state"`
}

// MoveResponse reports the outcome of a move.
type MoveResponse struct {
	ReachedEnd bool       `json:"reached_end"`
	State      game.State `json:"state"`
}
