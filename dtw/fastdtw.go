package dtw

// blockSize is the fine-grid stride of one coarse step. It must stay
// coupled to the Accessor.Half stride: one coarse element covers two
// fine elements.
const blockSize = 2

// Fast is the approximate multi-resolution aligner. It halves both
// sequences, recurses until the base size, projects the coarse path
// onto the fine grid as a dynamic window, grows the window by the
// configured radius, and refines with a Windowed pass. The returned
// cost is an upper bound on the exact cost; the gap shrinks as the
// radius grows.
type Fast struct {
	dist    Distance
	radius  int
	minSize int
	exact   Aligner // delegate once min(n, m) drops to minSize
}

// NewFast builds the approximate aligner. radius ≥ 1 controls how far
// the refined band strays from the projected coarse path; minSize ≥ 1
// is the sequence length at which recursion bottoms out into the exact
// delegate. The delegate must produce a path.
func NewFast(dist Distance, radius, minSize int, exact Aligner) (*Fast, error) {
	if radius < 1 || minSize < 1 || exact == nil {
		return nil, ErrBadOption
	}

	return &Fast{
		dist:    dist,
		radius:  radius,
		minSize: minSize,
		exact:   exact,
	}, nil
}

// Calculate returns the approximate cost and its warping path.
// Recursion depth is O(log min(n, m)); peak memory is dominated by the
// top-level banded refinement.
func (f *Fast) Calculate(a, b Accessor) (float64, Path, error) {
	n, m := a.Len(), b.Len()

	// 1) Base case: small enough for the exact reference.
	if n <= f.minSize || m <= f.minSize {
		return f.exact.Calculate(a, b)
	}

	// 2) Halve both sequences and solve the coarse problem. Halves the
	//    engine derives are its own to release.
	halfA, err := a.Half()
	if err != nil {
		return 0, nil, err
	}
	defer release(halfA)
	halfB, err := b.Half()
	if err != nil {
		return 0, nil, err
	}
	defer release(halfB)

	_, coarse, err := f.Calculate(halfA, halfB)
	if err != nil {
		return 0, nil, err
	}

	// 3) Project the coarse path onto the fine grid and widen it.
	win, err := f.project(coarse, halfA.Len(), halfB.Len(), n, m)
	if err != nil {
		return 0, nil, err
	}

	// 4) Refine at full resolution inside the projected band.
	banded := &Windowed{dist: f.dist, win: win}

	return banded.Calculate(a, b)
}

// project maps a coarse warping path onto the (n+1)×(m+1) fine grid.
// The path arrives in reverse order (end → start); the projector walks
// it from the start, doubling coordinates as the coarse row or column
// advances and smoothing diagonal corners with the two knight cells.
// The band is then grown by the radius and empty rows inherit their
// neighbour's interval so every row is covered.
func (f *Fast) project(coarse Path, coarseRows, coarseCols, n, m int) (*DynamicWindow, error) {
	if len(coarse) == 0 {
		return nil, ErrEmptyWindow
	}
	win := NewDynamicWindow(n+1, m)

	// 1) The traversal starts at the path's terminal cell, which holds
	//    the minimum row and column the extractor reached.
	prev := coarse[len(coarse)-1]
	ci, cj := blockSize*prev.I, blockSize*prev.J
	win.Expand(ci, cj)
	for k := len(coarse) - 2; k >= 0; k-- {
		ci, cj = projectStep(win, prev, coarse[k], ci, cj)
		prev = coarse[k]
	}

	// 2) The stored path stops one step short of the bottom-right
	//    corner; close the projection over it so the fine (n, m) cell
	//    stays admissible at any radius.
	projectStep(win, prev, Coord{I: coarseRows, J: coarseCols}, ci, cj)

	// 3) An odd fine length n leaves the last row uncovered by doubling;
	//    replicate the penultimate row.
	if n%2 == 1 {
		win.copyRow(n, n-1)
	}

	// 4) Grow by the radius, then let rows the projection never
	//    touched inherit a neighbouring interval, sweeping down and up.
	win.Grow(f.radius)
	for r := 1; r <= n; r++ {
		win.copyRow(r, r-1)
	}
	for r := n - 1; r >= 0; r-- {
		win.copyRow(r, r+1)
	}

	// 5) A projection that cannot host a path is a bug, not an input
	//    error; fail loudly.
	if err := win.Validate(); err != nil {
		return nil, err
	}
	if !win.InRange(0, 0) || !win.InRange(n, m) {
		return nil, ErrEmptyWindow
	}

	return win, nil
}

// projectStep advances the fine coordinates for one coarse step from
// prev to cur and marks the crossed fine cells admissible. Diagonal
// advances mark the two knight cells around the corner; axis advances
// mark the blockSize cells in the advancing direction.
func projectStep(win *DynamicWindow, prev, cur Coord, ci, cj int) (int, int) {
	rowAdvance := cur.I > prev.I
	colAdvance := cur.J > prev.J
	switch {
	case rowAdvance && colAdvance:
		win.Expand(ci+1, cj+2)
		win.Expand(ci+2, cj+1)
		ci += blockSize
		cj += blockSize
		win.Expand(ci, cj)
	case rowAdvance:
		win.Expand(ci+1, cj)
		win.Expand(ci+2, cj)
		ci += blockSize
	case colAdvance:
		win.Expand(ci, cj+1)
		win.Expand(ci, cj+2)
		cj += blockSize
	}

	return ci, cj
}
