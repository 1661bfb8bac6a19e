package dtw

import "math"

// Standard is the exact full-matrix DTW aligner. It allocates the
// complete (n+1)×(m+1) cost grid, so it supports path extraction and
// serves as the normative cost reference for every other variant.
type Standard struct {
	dist Distance
}

// NewStandard builds the exact aligner around a borrowed distance
// oracle.
func NewStandard(dist Distance) *Standard {
	return &Standard{dist: dist}
}

// Calculate fills the full cost matrix with the DTW recurrence
//
//	M[i][j] = min(dist(a[i-1], b[j-1]) + M[i-1][j-1],
//	              gap + M[i-1][j],
//	              gap + M[i][j-1])
//
// and returns the bottom-right cost with its warping path.
// Complexity: O(n·m) time and memory.
func (s *Standard) Calculate(a, b Accessor) (float64, Path, error) {
	n, m := a.Len(), b.Len()
	gap := s.dist.Gap()

	// 1) Boundary: aligning against an empty prefix costs pure gaps.
	g := newGrid(n+1, m+1, 0)
	var i, j int
	for i = 1; i <= n; i++ {
		g.set(i, 0, float64(i)*gap)
	}
	for j = 1; j <= m; j++ {
		g.set(0, j, float64(j)*gap)
	}

	// 2) Interior fill, row by row.
	var ai TokenID
	var diag, up, left float64
	for i = 1; i <= n; i++ {
		ai = a.At(i - 1)
		for j = 1; j <= m; j++ {
			diag = s.dist.Distance(ai, b.At(j-1)) + g.at(i-1, j-1)
			up = gap + g.at(i-1, j)
			left = gap + g.at(i, j-1)
			g.set(i, j, min3(diag, up, left))
		}
	}

	// 3) Surface non-finite results instead of propagating them.
	cost := g.at(n, m)
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, nil, ErrNonFiniteCost
	}

	// 4) Extract the witnessing path; no window constrains it.
	path, _, _ := warpPath(g, nil)

	return cost, path, nil
}
