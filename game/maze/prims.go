package maze

// frontier holds candidate edges from a visited cell to an unvisited one.
// The same target cell may appear several times from different parents.
type frontier []Edge

func (f *frontier) push(e Edge) {
	*f = append(*f, e)
}

// takeAt removes and returns entry i by moving the last entry into its slot.
func (f *frontier) takeAt(i int) Edge {
	s := *f
	last := len(s) - 1
	e := s[i]
	s[i] = s[last]
	*f = s[:last]
	return e
}

// pushUnvisited queues every unvisited neighbor of pos.
func (m *Maze) pushUnvisited(f *frontier, pos CellPosition) {
	for _, e := range m.Neighbors(pos) {
		if !m.grid[e.To.Row][e.To.Col].Visited {
			f.push(e)
		}
	}
}

// generatePrims carves the maze by growing a tree from a random seed cell,
// repeatedly attaching a uniformly chosen frontier cell to it.
func (m *Maze) generatePrims() {
	_ = m.Reset(m.width, m.height)

	col := m.rand.Intn(m.width)
	row := m.rand.Intn(m.height)
	seed := CellPosition{Row: row, Col: col}
	m.grid[row][col].Visited = true

	var f frontier
	m.pushUnvisited(&f, seed)

	for len(f) > 0 {
		e := f.takeAt(m.rand.Intn(len(f)))
		next := m.grid[e.To.Row][e.To.Col]
		if next.Visited {
			continue
		}

		m.openWall(e)
		next.Visited = true
		m.pushUnvisited(&f, e.To)
	}
}
