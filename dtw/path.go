package dtw

import "math"

// predecessor reads the cost at (r, c), treating any cell outside the
// window as +Inf so it always loses the minimum.
func predecessor(g *grid, win *DynamicWindow, r, c int) float64 {
	if win != nil && !win.InRange(r, c) {
		return math.Inf(1)
	}

	return g.at(r, c)
}

// warpPath traces a minimum-cost path from the bottom-right cell of g
// to the top-left, optionally constrained by win. The path is emitted
// in reverse order (end → start). It also reports the minimum row and
// column indices reached, which the multi-resolution projection needs.
//
// At each interior step the three predecessors are compared and the
// strict minimum wins; ties break diagonal > up > left so paths are
// deterministic. When only one index is positive the walk follows the
// remaining axis. If all three predecessors are +Inf — possible only
// under a malformed window — the larger index is decremented so the
// walk always terminates.
func warpPath(g *grid, win *DynamicWindow) (Path, int, int) {
	// 1) Start at the bottom-right corner of the matrix.
	i, j := g.rows-1, g.cols-1
	path := make(Path, 0, g.rows+g.cols)
	minI, minJ := i, j

	// 2) Walk until the origin; each iteration records exactly one cell.
	var diag, up, left float64
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			// Only the column axis remains.
			j--
		case j == 0:
			// Only the row axis remains.
			i--
		default:
			diag = predecessor(g, win, i-1, j-1)
			up = predecessor(g, win, i-1, j)
			left = predecessor(g, win, i, j-1)
			switch {
			case math.IsInf(diag, 1) && math.IsInf(up, 1) && math.IsInf(left, 1):
				// Malformed window: decrement the larger index.
				if i <= j {
					j--
				} else {
					i--
				}
			case diag <= up && diag <= left:
				i--
				j--
			case up <= left:
				i--
			default:
				j--
			}
		}

		// 3) Record the cell and track the minima for the projector.
		path = append(path, Coord{I: i, J: j})
		if i < minI {
			minI = i
		}
		if j < minJ {
			minJ = j
		}
	}

	return path, minI, minJ
}
