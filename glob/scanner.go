package glob

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tempuslabs/globre/wc_helpers"
)

const (
	separator    = `[\/\\]`
	notSeparator = `[^\/\\]`
	noDot        = `(?!\.)`
)

func dotGuard(segStart, dot bool) string {
	if segStart && !dot {
		return noDot
	}
	return ""
}

type scanner struct {
	src    string
	pos    int
	opts   Options
	frames []*frame
	// sepEnd is the offset just past the last separator emitted.
	sepEnd int
	// failed holds the offsets of constructs that already rolled back.
	failed map[int]bool
}

func newScanner(src string, opts Options) *scanner {
	s := &scanner{src: src, opts: opts, sepEnd: -1, failed: make(map[int]bool)}
	s.frames = []*frame{{kind: kindLiteral, segStart: true}}
	return s
}

func (s *scanner) top() *frame {
	return s.frames[len(s.frames)-1]
}

func (s *scanner) emit(tok string) {
	s.top().emit(tok)
}

func (s *scanner) advance(n int) {
	s.pos += n
	if s.pos > len(s.src) {
		panic(fmt.Sprintf("glob: scanner cursor %d past end of %q", s.pos, s.src))
	}
}

// push opens a frame for the construct starting at the cursor.
func (s *scanner) push(k kind) *frame {
	f := &frame{kind: k, start: s.pos, segStart: s.atSegmentStart(s.pos)}
	s.frames = append(s.frames, f)
	return f
}

func (s *scanner) pop() *frame {
	f := s.top()
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

// commit closes the top frame and hands its fragment to the parent.
func (s *scanner) commit(tok string) {
	s.pop()
	s.emit(tok)
}

// rollback discards the top frame and rescans its opening character as a
// literal; the rest of its source is scanned again by the enclosing loop.
func (s *scanner) rollback() {
	f := s.pop()
	f.rolledBack = true
	s.failed[f.start] = true
	f.tokens = nil
	f.negations = nil
	log.WithFields(log.Fields{
		"pattern": s.src,
		"offset":  f.start,
		"kind":    f.kind.String(),
	}).Debug("Malformed construct, matching it literally")
	if s.sepEnd > f.start {
		s.sepEnd = -1
	}
	s.pos = f.start
	s.scanLiteral()
}

// atSegmentStart reports whether offset i begins a path segment.
func (s *scanner) atSegmentStart(i int) bool {
	if i == 0 || i == s.sepEnd {
		return true
	}
	f := s.top()
	return f.segStart && i == f.altStart
}

// stopsAt reports whether src[i] closes the innermost construct.
func (s *scanner) stopsAt(i int) bool {
	f := s.top()
	c := s.src[i]
	switch f.kind {
	case kindBraces:
		return c == ',' || c == '}'
	case kindPatternList:
		return c == '|' || c == ')'
	case kindClass:
		return c == ']' && i != f.bodyStart
	}
	return false
}

func (s *scanner) isSeparatorAt(i int) bool {
	return wc_helpers.IsSeparator(s.src[i]) && !wc_helpers.IsEscapeAt(s.src, i)
}

func (s *scanner) isPatternListAt(i int) bool {
	return !s.opts.NoExtGlob &&
		wc_helpers.IsExtGlobSigil(s.src[i]) &&
		i+1 < len(s.src) && s.src[i+1] == '(' &&
		wc_helpers.FindClosing(s.src, i+1, '(', ')') >= 0
}

// scanPattern consumes input until the end or until a delimiter that
// closes the innermost construct, which it leaves unconsumed.
func (s *scanner) scanPattern() {
	for s.pos < len(s.src) {
		if s.stopsAt(s.pos) {
			return
		}
		if s.top().kind == kindClass {
			s.scanClassMember()
			continue
		}
		c := s.src[s.pos]
		switch {
		case c == '\'' || c == '"':
			s.scanQuoted()
		case wc_helpers.IsEscapeAt(s.src, s.pos):
			s.emit(wc_helpers.EscapeChar(s.src[s.pos+1]))
			s.advance(2)
		case wc_helpers.IsSeparator(c):
			s.emit(separator)
			s.advance(1)
			s.sepEnd = s.pos
		case c == '{' && !s.opts.NoBrace:
			s.scanBraces()
		case s.isPatternListAt(s.pos):
			s.scanPatternList()
		case c == '?':
			s.emit(dotGuard(s.atSegmentStart(s.pos), s.opts.Dot) + notSeparator)
			s.advance(1)
		case c == '*':
			s.scanStar()
		case c == '[':
			s.scanClass()
		default:
			s.scanLiteral()
		}
	}
}

func (s *scanner) scanLiteral() {
	s.emit(wc_helpers.EscapeChar(s.src[s.pos]))
	s.advance(1)
}

func (s *scanner) scanQuoted() {
	end := wc_helpers.FindQuoteEnd(s.src, s.pos)
	if end < 0 {
		s.scanLiteral()
		return
	}
	body := s.src[s.pos+1 : end]
	if s.src[s.pos] == '"' {
		body = strings.ReplaceAll(body, `\"`, `"`)
	}
	s.emit(wc_helpers.EscapeString(body))
	s.advance(end + 1 - s.pos)
}
