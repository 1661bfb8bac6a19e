package trace

import (
	"regexp"

	"github.com/pkg/errors"
)

// Cleaner reduces each split token to the interesting fragment before
// interning. Pattern is matched against the token; Group selects the
// capture to keep (0 keeps the whole match). Tokens the pattern does
// not match pass through unchanged. A nil Cleaner or nil Pattern
// disables cleaning. This is how machine-code traces drop operand
// addresses and keep only the mnemonics.
type Cleaner struct {
	Pattern *regexp.Regexp
	Group   int
}

// Split cuts text on the separator regex and applies the optional
// cleaner to every piece.
func Split(text, separator string, cleaner *Cleaner) ([]string, error) {
	re, err := regexp.Compile(separator)
	if err != nil {
		return nil, errors.Wrapf(err, "trace: separator %q", separator)
	}
	parts := re.Split(text, -1)
	if cleaner == nil || cleaner.Pattern == nil {
		return parts, nil
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		m := cleaner.Pattern.FindStringSubmatch(p)
		if m == nil {
			out = append(out, p)

			continue
		}
		if cleaner.Group < 0 || cleaner.Group >= len(m) {
			return nil, errors.Wrapf(ErrBadCleaner, "group %d of %q", cleaner.Group, cleaner.Pattern)
		}
		out = append(out, m[cleaner.Group])
	}

	return out, nil
}
