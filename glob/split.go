package glob

import (
	"strings"

	"github.com/tempuslabs/globre/wc_helpers"
)

// SplitResult is a pattern divided at the last separator before its first
// wildcard.
type SplitResult struct {
	Base    string `json:"base"`
	Pattern string `json:"pattern"`
}

// Split returns the literal directory prefix of pattern and the remainder.
// A leading negation stays on the returned pattern. When no separator
// precedes the first wildcard the base is ".".
func Split(pattern string, opts Options) SplitResult {
	negation := negationPrefix(pattern, opts)
	p := pattern[len(negation):]

	lastSep := -1
	i := 0
walk:
	for i < len(p) {
		c := p[i]
		switch {
		case c == '\'' || c == '"':
			if end := wc_helpers.FindQuoteEnd(p, i); end >= 0 {
				i = end + 1
				continue
			}
		case wc_helpers.IsEscapeAt(p, i):
			if wc_helpers.IsGlobSpecial(p[i+1]) && p[i+1] != ',' {
				break walk
			}
			i += 2
			continue
		case wc_helpers.IsSeparator(c):
			lastSep = i
		case c == '*' || c == '?':
			break walk
		case c == '[':
			if wc_helpers.FindClassEnd(p, i) >= 0 {
				break walk
			}
		case c == '{' && !opts.NoBrace:
			if wc_helpers.FindClosing(p, i, '{', '}') >= 0 {
				break walk
			}
		case !opts.NoExtGlob && wc_helpers.IsExtGlobSigil(c) && i+1 < len(p) && p[i+1] == '(':
			if wc_helpers.FindClosing(p, i+1, '(', ')') >= 0 {
				break walk
			}
		}
		i++
	}

	switch {
	case lastSep < 0:
		return SplitResult{Base: ".", Pattern: negation + p}
	case lastSep == 0:
		return SplitResult{Base: p[:1], Pattern: negation + p[1:]}
	}
	return SplitResult{Base: p[:lastSep], Pattern: negation + p[lastSep+1:]}
}

// negationPrefix returns the run of leading ! that negates pattern, leaving
// an extglob !(...) in place.
func negationPrefix(pattern string, opts Options) string {
	if opts.NoNegate {
		return ""
	}
	n := 0
	for n < len(pattern) && pattern[n] == '!' {
		if !opts.NoExtGlob && n+1 < len(pattern) && pattern[n+1] == '(' &&
			wc_helpers.FindClosing(pattern, n+1, '(', ')') >= 0 {
			break
		}
		n++
	}
	return strings.Repeat("!", n)
}
