package glob

import "strings"

type kind int

const (
	kindLiteral kind = iota
	kindClass
	kindBraces
	kindPatternList
	kindNegation
)

func (k kind) String() string {
	switch k {
	case kindClass:
		return "class"
	case kindBraces:
		return "braces"
	case kindPatternList:
		return "pattern list"
	case kindNegation:
		return "negation"
	}
	return "literal"
}

// frame is one bracketed construct being scanned. Frames live on the
// scanner's stack; the frame below is the parent.
type frame struct {
	kind kind
	// start is the source offset of the opening delimiter.
	start int
	// bodyStart is where the body begins once any opening has been consumed.
	bodyStart int
	// altStart is where the current alternative begins.
	altStart int
	// segStart records whether the construct opened at a path segment start.
	segStart   bool
	tokens     []string
	negations  []negation
	rolledBack bool
}

// negation is a pending !(...) group. Its fragment depends on whatever the
// enclosing alternative compiles to after it, so it is resolved on flush.
type negation struct {
	index    int
	group    string
	segStart bool
}

func (f *frame) emit(tok string) {
	f.tokens = append(f.tokens, tok)
}

func (f *frame) negate(group string, segStart bool) {
	f.negations = append(f.negations, negation{index: len(f.tokens), group: group, segStart: segStart})
	f.tokens = append(f.tokens, "")
}

// flush resolves pending negations against the tokens that follow them,
// returns the joined fragment and empties the frame.
func (f *frame) flush(anchor string, dot bool) string {
	for i := len(f.negations) - 1; i >= 0; i-- {
		n := f.negations[i]
		rest := strings.Join(f.tokens[n.index+1:], "")
		f.tokens[n.index] = "(?:(?!" + n.group + rest + anchor + ")" + dotGuard(n.segStart, dot) + notSeparator + "*?)"
	}
	out := strings.Join(f.tokens, "")
	f.tokens = f.tokens[:0]
	f.negations = f.negations[:0]
	return out
}
