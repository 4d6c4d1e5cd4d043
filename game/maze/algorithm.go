package maze

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("unknown maze generation algorithm")

// Algorithm selects how a maze is carved.
type Algorithm int

const (
	Prims Algorithm = iota + 1
	Kruskals
)

func (a Algorithm) String() string {
	switch a {
	case Prims:
		return "prims"
	case Kruskals:
		return "kruskals"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts "prims", "p", "kruskals" or "k", in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prims", "prim", "p":
		return Prims, nil
	case "kruskals", "kruskal", "k":
		return Kruskals, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Generate resets the grid and carves a perfect maze with alg.
// The maze is left untouched when alg is unknown.
func (m *Maze) Generate(alg Algorithm) error {
	switch alg {
	case Prims:
		m.generatePrims()
	case Kruskals:
		m.generateKruskals()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}

	m.algorithm = alg
	return nil
}
