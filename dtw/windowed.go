package dtw

import "math"

// windowSentinel is the cost contributed by out-of-window predecessors
// during a banded fill. It is finite so adding gap or substitution
// costs on top of it can never produce NaN, yet large enough that it
// always loses the minimum against any real path cost.
const windowSentinel = math.MaxFloat64 / 2

// Windowed is the banded DTW variant: only cells inside a
// DynamicWindow are computed, everything else stays +Inf. FastDTW uses
// it to refine a projected coarse path; it is also usable standalone
// with a Sakoe–Chiba band.
type Windowed struct {
	dist Distance
	win  *DynamicWindow
}

// NewWindowed builds a banded aligner over a borrowed oracle and
// window. The window must be well-formed; it is read-only during the
// fill, so one window may serve concurrent calls.
func NewWindowed(dist Distance, win *DynamicWindow) (*Windowed, error) {
	if win == nil {
		return nil, ErrBadOption
	}
	if err := win.Validate(); err != nil {
		return nil, err
	}

	return &Windowed{dist: dist, win: win}, nil
}

// Calculate fills the admissible band of the (n+1)×(m+1) grid with the
// standard recurrence and extracts the path under the same window.
// The window height must be n+1. If the window admits no path to the
// final cell the result is ErrWindowUnreachable rather than a bogus
// sentinel-level cost.
func (w *Windowed) Calculate(a, b Accessor) (float64, Path, error) {
	n, m := a.Len(), b.Len()
	if w.win.Height() != n+1 {
		return 0, nil, ErrWindowShape
	}
	gap := w.dist.Gap()

	// 1) Everything starts unreachable; only in-window cells get values.
	g := newGrid(n+1, m+1, math.Inf(1))

	// 2) Fill each row's admissible interval.
	var ai TokenID
	var j, low, high int
	var ok bool
	var diag, up, left float64
	for i := 0; i <= n; i++ {
		low, high, ok = w.win.Bounds(i)
		if !ok {
			continue // empty row
		}
		if high > m {
			high = m // the interval may overshoot the matrix
		}
		if i > 0 {
			ai = a.At(i - 1)
		}
		for j = low; j <= high; j++ {
			switch {
			case i == 0 && j == 0:
				g.set(0, 0, 0)
			case i == 0:
				g.set(0, j, float64(j)*gap)
			case j == 0:
				g.set(i, 0, float64(i)*gap)
			default:
				// Out-of-window predecessors contribute the finite
				// sentinel so they lose the min without risking NaN.
				if w.win.InRange(i-1, j-1) {
					diag = w.dist.Distance(ai, b.At(j-1)) + g.at(i-1, j-1)
				} else {
					diag = windowSentinel
				}
				if w.win.InRange(i-1, j) {
					up = gap + g.at(i-1, j)
				} else {
					up = windowSentinel
				}
				if w.win.InRange(i, j-1) {
					left = gap + g.at(i, j-1)
				} else {
					left = windowSentinel
				}
				g.set(i, j, min3(diag, up, left))
			}
		}
	}

	// 3) A sentinel-level or infinite result means no in-window path
	//    reaches (n, m); surface that instead of returning it.
	cost := g.at(n, m)
	if math.IsNaN(cost) {
		return 0, nil, ErrNonFiniteCost
	}
	if math.IsInf(cost, 1) || cost >= windowSentinel {
		return 0, nil, ErrWindowUnreachable
	}

	// 4) The path is extracted under the same window.
	path, _, _ := warpPath(g, w.win)

	return cost, path, nil
}
