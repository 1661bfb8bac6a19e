package trace

import "github.com/katalvlaran/tracedtw/dtw"

// Slice is the in-memory sequence accessor: a plain token slice. It is
// the natural form for tokeniser output, tests, and the eager fallback
// when a file cannot be mapped.
type Slice []dtw.TokenID

// Len reports the number of tokens.
func (s Slice) Len() int {
	return len(s)
}

// At returns the token at index i.
func (s Slice) At(i int) dtw.TokenID {
	return s[i]
}

// Half returns a new Slice holding the even-indexed tokens.
func (s Slice) Half() (dtw.Accessor, error) {
	h := make(Slice, len(s)/2)
	for i := range h {
		h[i] = s[2*i]
	}

	return h, nil
}
