package dtw

// grid is a dense row-major cost matrix. Storing the cells in one flat
// slice keeps the DP fill cache-friendly and allocation happens in a
// single bulk make at the start of a computation.
type grid struct {
	rows, cols int       // matrix dimensions, both ≥ 1
	cells      []float64 // flat backing storage, length rows*cols
}

// newGrid allocates a rows×cols grid with every cell set to fill.
func newGrid(rows, cols int, fill float64) *grid {
	g := &grid{
		rows:  rows,
		cols:  cols,
		cells: make([]float64, rows*cols),
	}
	if fill != 0 {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}

	return g
}

// at returns the cost stored at (i, j).
func (g *grid) at(i, j int) float64 {
	return g.cells[i*g.cols+j]
}

// set stores v at (i, j).
func (g *grid) set(i, j int, v float64) {
	g.cells[i*g.cols+j] = v
}
