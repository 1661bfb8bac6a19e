// Package align renders a warping path as a human-readable alignment
// file: one row per aligned position, tokens padded to the codec's
// largest width. Matches print "tok1 | tok2", mismatches
// "tok1 ! tok2", and gaps "- > tok2" or "tok1 < -".
package align

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tracedtw/dtw"
	"github.com/katalvlaran/tracedtw/trace"
)

// gapIndex marks a position covered by a gap rather than a token.
const gapIndex = -1

// Write renders path — as emitted by the engine, in reverse order —
// over the two aligned sequences. The codec must be the one that
// interned both traces, so ids resolve back to text and the column
// width is the largest token seen.
func Write(w io.Writer, path dtw.Path, a, b dtw.Accessor, codec *trace.Codec, gapSymbol string) error {
	if len(path) == 0 {
		return nil
	}

	// 1) Classify every transition between consecutive path cells.
	//    The stored path stops one step short of the bottom-right
	//    corner, so the walk starts from that virtual cell.
	rowsA := make([]int, 0, len(path))
	rowsB := make([]int, 0, len(path))
	later := dtw.Coord{I: a.Len(), J: b.Len()}
	for _, earlier := range path {
		switch {
		case later.I > earlier.I && later.J > earlier.J:
			// Diagonal: both tokens consumed.
			rowsA = append(rowsA, earlier.I)
			rowsB = append(rowsB, earlier.J)
		case later.J > earlier.J:
			// Only the second sequence advances: gap in the first.
			rowsA = append(rowsA, gapIndex)
			rowsB = append(rowsB, earlier.J)
		case later.I > earlier.I:
			// Only the first sequence advances: gap in the second.
			rowsA = append(rowsA, earlier.I)
			rowsB = append(rowsB, gapIndex)
		}
		later = earlier
	}

	// 2) Emit in alignment order, undoing the path's reverse storage.
	width := codec.LargestTokenLen()
	for k := len(rowsA) - 1; k >= 0; k-- {
		if err := writeRow(w, rowsA[k], rowsB[k], a, b, codec, gapSymbol, width); err != nil {
			return err
		}
	}

	return nil
}

// writeRow prints a single aligned position.
func writeRow(w io.Writer, ia, ib int, a, b dtw.Accessor, codec *trace.Codec, gapSymbol string, width int) error {
	var err error
	switch {
	case ia == gapIndex:
		var t2 string
		if t2, err = codec.IDToToken(b.At(ib)); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%*s > %-*s\n", width, gapSymbol, width, t2)
	case ib == gapIndex:
		var t1 string
		if t1, err = codec.IDToToken(a.At(ia)); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%*s < %-*s\n", width, t1, width, gapSymbol)
	default:
		t1id, t2id := a.At(ia), b.At(ib)
		var t1, t2 string
		if t1, err = codec.IDToToken(t1id); err != nil {
			return err
		}
		if t2, err = codec.IDToToken(t2id); err != nil {
			return err
		}
		sym := "!"
		if t1id == t2id {
			sym = "|"
		}
		_, err = fmt.Fprintf(w, "%*s %s %-*s\n", width, t1, sym, width, t2)
	}

	return errors.Wrap(err, "align: write row")
}
