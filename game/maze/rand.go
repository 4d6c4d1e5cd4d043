package maze

import (
	"math/rand"
	"time"
)

// RandSource is the only source of randomness the generators draw from.
// Intn returns a uniform integer in [0, n).
type RandSource interface {
	Intn(n int) int
}

// NewRand returns a seeded math/rand generator. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleEdges performs a Fisher-Yates shuffle of edges using r.
func shuffleEdges(r RandSource, edges []Edge) {
	for i := len(edges) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}
