package maze

// cellID flattens pos into the union-find id space.
func (m *Maze) cellID(pos CellPosition) int {
	return pos.Row*m.width + pos.Col
}

// kruskalEdges lists every internal wall once: for each cell, column by
// column, the wall to its right neighbor and then the wall to its bottom one.
func (m *Maze) kruskalEdges() []Edge {
	edges := make([]Edge, 0, (m.width-1)*m.height+m.width*(m.height-1))
	for col := 0; col < m.width; col++ {
		for row := 0; row < m.height; row++ {
			pos := CellPosition{Row: row, Col: col}
			if col < m.width-1 {
				edges = append(edges, Edge{From: pos, To: pos.Step(Right), Direction: Right})
			}
			if row < m.height-1 {
				edges = append(edges, Edge{From: pos, To: pos.Step(Bottom), Direction: Bottom})
			}
		}
	}
	return edges
}

// generateKruskals carves the maze by opening shuffled walls whose two sides
// are not yet connected.
func (m *Maze) generateKruskals() {
	_ = m.Reset(m.width, m.height)

	edges := m.kruskalEdges()
	shuffleEdges(m.rand, edges)

	sets := newUnionFind(m.width * m.height)
	for _, e := range edges {
		if sets.union(m.cellID(e.From), m.cellID(e.To)) {
			m.openWall(e)
		}
	}

	m.markAllVisited()
}
