package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRand always draws 0.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// allPositions lists every cell of m in row-major order.
func allPositions(m *Maze) []CellPosition {
	var out []CellPosition
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			out = append(out, CellPosition{Row: row, Col: col})
		}
	}
	return out
}

// passages counts internal walls that are open, looking only rightward and
// downward so each wall is counted once.
func passages(m *Maze) int {
	n := 0
	for _, pos := range allPositions(m) {
		if pos.Col < m.Width()-1 && !m.HasWall(pos, Right) {
			n++
		}
		if pos.Row < m.Height()-1 && !m.HasWall(pos, Bottom) {
			n++
		}
	}
	return n
}

// reachable counts cells reachable from the start through open walls.
func reachable(m *Maze) int {
	seen := map[CellPosition]bool{m.Start(): true}
	queue := []CellPosition{m.Start()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range m.Neighbors(cur) {
			if m.HasWall(cur, e.Direction) || seen[e.To] {
				continue
			}
			seen[e.To] = true
			queue = append(queue, e.To)
		}
	}
	return len(seen)
}

func assertWallsPaired(t *testing.T, m *Maze) {
	t.Helper()
	for _, pos := range allPositions(m) {
		for _, e := range m.Neighbors(pos) {
			assert.Equal(t, m.HasWall(pos, e.Direction), m.HasWall(e.To, e.Direction.Opposite()),
				"wall between %s and %s out of sync", pos, e.To)
		}
	}
}

func assertBorderIntact(t *testing.T, m *Maze) {
	t.Helper()
	for _, pos := range allPositions(m) {
		for _, d := range []Direction{Top, Right, Bottom, Left} {
			nbr := pos.Step(d)
			if !m.InBound(nbr.Row, nbr.Col) {
				assert.True(t, m.HasWall(pos, d), "border wall %s of %s removed", d, pos)
			}
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{name: "single cell", width: 1, height: 1},
		{name: "rectangle", width: 40, height: 30},
		{name: "zero width", width: 0, height: 5, wantErr: true},
		{name: "negative height", width: 5, height: -1, wantErr: true},
		{name: "too wide", width: MaxDimension + 1, height: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.width, tt.height, WithSeed(1))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimensions)
				assert.Nil(t, m)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.width, m.Width())
			assert.Equal(t, tt.height, m.Height())
			assert.Equal(t, CellPosition{Row: 0, Col: 0}, m.Start())
			assert.Equal(t, CellPosition{Row: tt.height - 1, Col: tt.width - 1}, m.End())
			assert.Equal(t, m.Start(), m.Player())
			assert.Zero(t, passages(m))
			for _, pos := range allPositions(m) {
				c, err := m.Cell(pos)
				require.NoError(t, err)
				assert.Equal(t, Walls{Top: true, Right: true, Bottom: true, Left: true}, c.Walls())
				assert.False(t, c.Visited)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	m, err := New(3, 3, WithRand(zeroRand{}))
	require.NoError(t, err)

	t.Run("corner", func(t *testing.T) {
		got := m.Neighbors(CellPosition{Row: 0, Col: 0})
		assert.Equal(t, []Edge{
			{From: CellPosition{0, 0}, To: CellPosition{Row: 0, Col: 1}, Direction: Right},
			{From: CellPosition{0, 0}, To: CellPosition{Row: 1, Col: 0}, Direction: Bottom},
		}, got)
	})

	t.Run("center uses left right top bottom order", func(t *testing.T) {
		center := CellPosition{Row: 1, Col: 1}
		got := m.Neighbors(center)
		require.Len(t, got, 4)
		assert.Equal(t, []Direction{Left, Right, Top, Bottom},
			[]Direction{got[0].Direction, got[1].Direction, got[2].Direction, got[3].Direction})
		for _, e := range got {
			assert.Equal(t, center.Step(e.Direction), e.To)
		}
	})

	t.Run("far corner", func(t *testing.T) {
		got := m.Neighbors(CellPosition{Row: 2, Col: 2})
		require.Len(t, got, 2)
		assert.Equal(t, Left, got[0].Direction)
		assert.Equal(t, Top, got[1].Direction)
	})
}

func TestRemoveWall(t *testing.T) {
	t.Run("clears both facing walls", func(t *testing.T) {
		for _, d := range []Direction{Top, Right, Bottom, Left} {
			m, err := New(3, 3, WithRand(zeroRand{}))
			require.NoError(t, err)
			a := CellPosition{Row: 1, Col: 1}
			b := a.Step(d)

			require.NoError(t, m.RemoveWall(a, b, d))
			assert.False(t, m.HasWall(a, d))
			assert.False(t, m.HasWall(b, d.Opposite()))
			assert.Equal(t, 1, m.RemovedWalls())
			assert.Equal(t, 1, passages(m))
			assertWallsPaired(t, m)
		}
	})

	t.Run("removing twice counts once", func(t *testing.T) {
		m, err := New(2, 1, WithRand(zeroRand{}))
		require.NoError(t, err)
		a, b := CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 1}
		require.NoError(t, m.RemoveWall(a, b, Right))
		require.NoError(t, m.RemoveWall(b, a, Left))
		assert.Equal(t, 1, m.RemovedWalls())
	})

	t.Run("rejects without touching walls", func(t *testing.T) {
		tests := []struct {
			name string
			a, b CellPosition
			d    Direction
			want error
		}{
			{name: "not adjacent", a: CellPosition{0, 0}, b: CellPosition{Row: 2, Col: 2}, d: Right, want: ErrNotAdjacent},
			{name: "wrong direction", a: CellPosition{0, 0}, b: CellPosition{Row: 0, Col: 1}, d: Bottom, want: ErrNotAdjacent},
			{name: "outside", a: CellPosition{0, 0}, b: CellPosition{Row: -1, Col: 0}, d: Top, want: ErrOutOfBounds},
			{name: "invalid direction", a: CellPosition{0, 0}, b: CellPosition{Row: 0, Col: 1}, d: Direction(9), want: ErrInvalidDirection},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				m, err := New(3, 3, WithRand(zeroRand{}))
				require.NoError(t, err)
				assert.ErrorIs(t, m.RemoveWall(tt.a, tt.b, tt.d), tt.want)
				assert.Zero(t, passages(m))
				assert.Zero(t, m.RemovedWalls())
			})
		}
	})

	t.Run("generator edges must be carvable", func(t *testing.T) {
		m, err := New(3, 3, WithRand(zeroRand{}))
		require.NoError(t, err)

		assert.Panics(t, func() {
			m.openWall(Edge{From: CellPosition{Row: 0, Col: 0}, To: CellPosition{Row: 2, Col: 2}, Direction: Right})
		})
		assert.NotPanics(t, func() {
			m.openWall(Edge{From: CellPosition{Row: 0, Col: 0}, To: CellPosition{Row: 0, Col: 1}, Direction: Right})
		})
		assert.Equal(t, 1, passages(m))
	})
}

func TestKruskalEdges(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 7}, {40, 30}}
	for _, s := range sizes {
		t.Run(fmt.Sprintf("%dx%d", s.w, s.h), func(t *testing.T) {
			m, err := New(s.w, s.h, WithRand(zeroRand{}))
			require.NoError(t, err)

			edges := m.kruskalEdges()
			assert.Len(t, edges, (s.w-1)*s.h+s.w*(s.h-1))

			seen := make(map[[2]CellPosition]bool)
			for _, e := range edges {
				assert.Contains(t, []Direction{Right, Bottom}, e.Direction)
				assert.Equal(t, e.From.Step(e.Direction), e.To)
				assert.True(t, m.InBound(e.To.Row, e.To.Col))
				key := [2]CellPosition{e.From, e.To}
				assert.False(t, seen[key], "duplicate edge %v", key)
				seen[key] = true
			}
		})
	}
}

func TestGenerateSpanningTree(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {5, 4}, {40, 30}}
	for _, alg := range []Algorithm{Prims, Kruskals} {
		for _, s := range sizes {
			for seed := int64(1); seed <= 5; seed++ {
				t.Run(fmt.Sprintf("%s/%dx%d/seed%d", alg, s.w, s.h, seed), func(t *testing.T) {
					m, err := New(s.w, s.h, WithSeed(seed))
					require.NoError(t, err)
					require.NoError(t, m.Generate(alg))

					cells := s.w * s.h
					assert.Equal(t, cells-1, passages(m))
					assert.Equal(t, cells-1, m.RemovedWalls())
					assert.Equal(t, cells, reachable(m))
					assert.Equal(t, alg, m.Algorithm())
					assertWallsPaired(t, m)
					assertBorderIntact(t, m)
					for _, pos := range allPositions(m) {
						c, _ := m.Cell(pos)
						assert.True(t, c.Visited)
					}
				})
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, alg := range []Algorithm{Prims, Kruskals} {
		t.Run(alg.String(), func(t *testing.T) {
			a, err := New(12, 9, WithSeed(42))
			require.NoError(t, err)
			b, err := New(12, 9, WithSeed(42))
			require.NoError(t, err)

			require.NoError(t, a.Generate(alg))
			require.NoError(t, b.Generate(alg))
			for _, pos := range allPositions(a) {
				wa, _ := a.Walls(pos)
				wb, _ := b.Walls(pos)
				assert.Equal(t, wa, wb, "walls differ at %s", pos)
			}
			assert.Equal(t, a.String(), b.String())
		})
	}
}

func TestGenerateReplacesGrid(t *testing.T) {
	m, err := New(6, 6, WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, m.Generate(Kruskals))
	before, _ := m.Cell(CellPosition{Row: 0, Col: 0})

	require.NoError(t, m.SetPlayer(CellPosition{Row: 3, Col: 3}))
	require.NoError(t, m.Generate(Prims))
	after, _ := m.Cell(CellPosition{Row: 0, Col: 0})

	assert.NotSame(t, before, after)
	assert.Equal(t, m.Start(), m.Player())
	assert.Equal(t, 35, passages(m))
}

func TestGenerateUnknownAlgorithm(t *testing.T) {
	m, err := New(3, 3, WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, m.Generate(Prims))
	snapshot := m.String()

	assert.ErrorIs(t, m.Generate(Algorithm(0)), ErrUnknownAlgorithm)
	assert.Equal(t, snapshot, m.String())
	assert.Equal(t, Prims, m.Algorithm())
}

// With every draw returning 0 the column-major edge list
// [right of r0c0, below r0c0, right of r1c0, below r0c1] shuffles to
// [below r0c0, right of r1c0, below r0c1, right of r0c0]; the last one would
// close a cycle and stays walled.
func TestKruskalsPinned2x2(t *testing.T) {
	m, err := New(2, 2, WithRand(zeroRand{}))
	require.NoError(t, err)
	require.NoError(t, m.Generate(Kruskals))

	want := map[CellPosition]Walls{
		{Row: 0, Col: 0}: {Top: true, Right: true, Bottom: false, Left: true},
		{Row: 0, Col: 1}: {Top: true, Right: true, Bottom: false, Left: true},
		{Row: 1, Col: 0}: {Top: false, Right: false, Bottom: true, Left: true},
		{Row: 1, Col: 1}: {Top: false, Right: true, Bottom: true, Left: false},
	}
	for pos, w := range want {
		got, err := m.Walls(pos)
		require.NoError(t, err)
		assert.Equal(t, w, got, "cell %s", pos)
	}
}

// Seed (0,0); frontier picks always take index 0 with swap-remove.
func TestPrimsPinned2x2(t *testing.T) {
	m, err := New(2, 2, WithRand(zeroRand{}))
	require.NoError(t, err)
	require.NoError(t, m.Generate(Prims))

	want := map[CellPosition]Walls{
		{Row: 0, Col: 0}: {Top: true, Right: false, Bottom: false, Left: true},
		{Row: 0, Col: 1}: {Top: true, Right: true, Bottom: false, Left: false},
		{Row: 1, Col: 0}: {Top: false, Right: true, Bottom: true, Left: true},
		{Row: 1, Col: 1}: {Top: false, Right: true, Bottom: true, Left: true},
	}
	for pos, w := range want {
		got, err := m.Walls(pos)
		require.NoError(t, err)
		assert.Equal(t, w, got, "cell %s", pos)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "prims", want: Prims},
		{in: "P", want: Prims},
		{in: " Kruskals ", want: Kruskals},
		{in: "k", want: Kruskals},
		{in: "wilson", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up": Up, "top": Top, "RIGHT": Right, "down": Down, "bottom": Bottom, "left": Left,
	}
	for in, want := range tests {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.False(t, Direction(-1).Valid())
	assert.False(t, Direction(4).Valid())
}

func TestString(t *testing.T) {
	m, err := New(2, 2, WithRand(zeroRand{}))
	require.NoError(t, err)
	require.NoError(t, m.Generate(Kruskals))

	want := "+---+---+\n" +
		"| @ |   |\n" +
		"+   +   +\n" +
		"|     E |\n" +
		"+---+---+\n"
	assert.Equal(t, want, m.String())

	require.NoError(t, m.SetPlayer(CellPosition{Row: 1, Col: 0}))
	assert.Contains(t, m.String(), "| S |")
	assert.Contains(t, m.String(), "| @   E |")
}
