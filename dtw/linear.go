package dtw

import "math"

// Linear is the exact linear-memory DTW variant. It keeps two rolling
// rows sized by the shorter sequence, so it computes the same cost as
// Standard — bit for bit — without being able to return a path.
type Linear struct {
	dist Distance
}

// NewLinear builds the linear-memory aligner around a borrowed
// distance oracle.
func NewLinear(dist Distance) *Linear {
	return &Linear{dist: dist}
}

// Calculate returns the exact DTW cost and a nil path.
// Complexity: O(n·m) time, O(min(n,m)) memory.
func (l *Linear) Calculate(a, b Accessor) (float64, Path, error) {
	// 1) Keep the shorter sequence on the inner loop so the rolling
	//    rows are as small as possible.
	if a.Len() > b.Len() {
		a, b = b, a
	}
	inner := a.Len()
	gap := l.dist.Gap()

	// 2) Row 0 is the pure-gap boundary.
	prev := make([]float64, inner+1)
	curr := make([]float64, inner+1)
	var j int
	for j = range prev {
		prev[j] = float64(j) * gap
	}

	// 3) Fill one row per outer element, reading the previous row and
	//    the left neighbour; identical recurrence to Standard.
	var bi TokenID
	var diag, up, left float64
	for i := 1; i <= b.Len(); i++ {
		bi = b.At(i - 1)
		curr[0] = float64(i) * gap
		for j = 1; j <= inner; j++ {
			diag = l.dist.Distance(a.At(j-1), bi) + prev[j-1]
			up = gap + prev[j]
			left = gap + curr[j-1]
			curr[j] = min3(diag, up, left)
		}
		prev, curr = curr, prev
	}

	// 4) After the final rotation the answer sits in prev.
	cost := prev[inner]
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, nil, ErrNonFiniteCost
	}

	return cost, nil, nil
}
