package dtw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracedtw/dtw"
)

// TestDynamicWindow_ExpandMonotone verifies that Expand only ever
// widens intervals and is idempotent.
func TestDynamicWindow_ExpandMonotone(t *testing.T) {
	w := dtw.NewDynamicWindow(4, 10)

	assert.False(t, w.RowSet(2), "rows start empty")

	w.Expand(2, 5)
	low, high, ok := w.Bounds(2)
	require.True(t, ok)
	assert.Equal(t, 5, low)
	assert.Equal(t, 5, high, "first expand pins a single column")

	w.Expand(2, 3)
	w.Expand(2, 7)
	low, high, _ = w.Bounds(2)
	assert.Equal(t, 3, low)
	assert.Equal(t, 7, high)

	w.Expand(2, 5) // inside the interval: no change
	low, high, _ = w.Bounds(2)
	assert.Equal(t, 3, low)
	assert.Equal(t, 7, high, "expand must be idempotent")
}

// TestDynamicWindow_ExpandIgnoresOutOfRange verifies rows and columns
// outside the window's shape are dropped silently.
func TestDynamicWindow_ExpandIgnoresOutOfRange(t *testing.T) {
	w := dtw.NewDynamicWindow(4, 10)

	w.Expand(-1, 3)
	w.Expand(4, 3)
	w.Expand(1, 11)
	w.Expand(1, -2)

	for r := 0; r < 4; r++ {
		assert.False(t, w.RowSet(r), "no in-range expand happened")
	}
}

// TestDynamicWindow_InRange exercises membership at the interval edges.
func TestDynamicWindow_InRange(t *testing.T) {
	w := dtw.NewDynamicWindow(3, 10)
	w.SetRange(1, 2, 6)

	assert.True(t, w.InRange(1, 2))
	assert.True(t, w.InRange(1, 6), "the interval is closed on both ends")
	assert.False(t, w.InRange(1, 1))
	assert.False(t, w.InRange(1, 7))
	assert.False(t, w.InRange(0, 2), "empty rows admit nothing")
	assert.False(t, w.InRange(5, 2), "out-of-range rows admit nothing")
}

// TestDynamicWindow_Grow verifies radius widening with clamping, and
// that empty rows stay empty.
func TestDynamicWindow_Grow(t *testing.T) {
	w := dtw.NewDynamicWindow(3, 8)
	w.SetRange(0, 1, 2)
	w.SetRange(2, 6, 7)

	w.Grow(3)

	low, high, _ := w.Bounds(0)
	assert.Equal(t, 0, low, "lower bound clamps at 0")
	assert.Equal(t, 5, high)

	low, high, _ = w.Bounds(2)
	assert.Equal(t, 3, low)
	assert.Equal(t, 8, high, "upper bound clamps at the width")

	assert.False(t, w.RowSet(1), "growing must not invent intervals")
}

// TestNewSakoeChibaWindow checks the symmetric band bounds.
func TestNewSakoeChibaWindow(t *testing.T) {
	w, err := dtw.NewSakoeChibaWindow(8, 7, 3)
	require.NoError(t, err)

	low, high, _ := w.Bounds(0)
	assert.Equal(t, 0, low)
	assert.Equal(t, 3, high)

	low, high, _ = w.Bounds(5)
	assert.Equal(t, 2, low)
	assert.Equal(t, 7, high, "band clamps at the width")

	_, err = dtw.NewSakoeChibaWindow(8, 7, -1)
	assert.ErrorIs(t, err, dtw.ErrBadOption)
}

// TestDynamicWindow_Validate flags inverted intervals.
func TestDynamicWindow_Validate(t *testing.T) {
	w := dtw.NewDynamicWindow(3, 5)
	require.NoError(t, w.Validate(), "empty windows are well-formed")

	w.SetRange(1, 4, 2)
	assert.ErrorIs(t, w.Validate(), dtw.ErrWindowBounds)
}
