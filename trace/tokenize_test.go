package trace_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracedtw/trace"
)

// TestSplit_Separator verifies plain regex splitting, including the
// default newline separator.
func TestSplit_Separator(t *testing.T) {
	tokens, err := trace.Split("mov\nadd\nret", `\n`, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"mov", "add", "ret"}, tokens)

	tokens, err = trace.Split("a::b::c", `::`, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tokens)
}

// TestSplit_BadSeparator surfaces regex compilation failures.
func TestSplit_BadSeparator(t *testing.T) {
	_, err := trace.Split("x", `[`, nil)
	assert.Error(t, err)
}

// TestSplit_CleanerGroup extracts a capture group from every token,
// the way machine-code traces keep mnemonics and drop operands.
func TestSplit_CleanerGroup(t *testing.T) {
	cleaner := &trace.Cleaner{Pattern: regexp.MustCompile(`^(\w+)`), Group: 1}

	tokens, err := trace.Split("mov eax, ebx\nadd ecx, 1", `\n`, cleaner)
	require.NoError(t, err)
	assert.Equal(t, []string{"mov", "add"}, tokens)
}

// TestSplit_CleanerWholeMatch keeps the whole match for group 0.
func TestSplit_CleanerWholeMatch(t *testing.T) {
	cleaner := &trace.Cleaner{Pattern: regexp.MustCompile(`\w+`), Group: 0}

	tokens, err := trace.Split("mov eax\nret", `\n`, cleaner)
	require.NoError(t, err)
	assert.Equal(t, []string{"mov", "ret"}, tokens)
}

// TestSplit_CleanerPassThrough leaves unmatched tokens untouched.
func TestSplit_CleanerPassThrough(t *testing.T) {
	cleaner := &trace.Cleaner{Pattern: regexp.MustCompile(`^\d+`), Group: 0}

	tokens, err := trace.Split("abc\n42x", `\n`, cleaner)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "42"}, tokens)
}

// TestSplit_CleanerBadGroup rejects capture groups the pattern does
// not define.
func TestSplit_CleanerBadGroup(t *testing.T) {
	cleaner := &trace.Cleaner{Pattern: regexp.MustCompile(`(\w+)`), Group: 5}

	_, err := trace.Split("abc", `\n`, cleaner)
	assert.ErrorIs(t, err, trace.ErrBadCleaner)
}
