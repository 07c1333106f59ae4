package glob

import "github.com/tempuslabs/globre/wc_helpers"

func (s *scanner) scanClass() {
	end := wc_helpers.FindClassEnd(s.src, s.pos)
	if s.failed[s.pos] || end < 0 {
		s.scanLiteral()
		return
	}
	// an unrecognised [:name:] makes the whole bracket expression literal
	if i := unknownPosixIn(s.src, s.pos+1, end); i >= 0 {
		s.failed[i] = true
		s.failed[s.pos] = true
		s.scanLiteral()
		return
	}
	f := s.push(kindClass)
	s.advance(1)
	negated := false
	if c := s.src[s.pos]; c == '!' || c == '^' {
		negated = true
		s.advance(1)
	}
	f.bodyStart = s.pos
	s.scanPattern()
	if s.pos >= len(s.src) || len(f.tokens) == 0 {
		s.rollback()
		return
	}
	s.advance(1)

	class := "["
	if negated {
		// a negated class never matches a separator
		class += `^\/\\`
	}
	s.commit(class + f.flush("", s.opts.Dot) + "]")
}

// unknownPosixIn returns the offset of the first unrecognised [:name:]
// shorthand in src[from:to], or -1.
func unknownPosixIn(src string, from, to int) int {
	for i := from; i < to; i++ {
		switch {
		case src[i] == '\\':
			i++
		case wc_helpers.UnknownPosixClassAt(src, i):
			return i
		}
	}
	return -1
}

func (s *scanner) scanClassMember() {
	c := s.src[s.pos]
	switch {
	case c == '\\' && s.pos+1 < len(s.src):
		next := s.src[s.pos+1]
		if next == '-' {
			s.emit(`\-`)
		} else {
			s.emit(wc_helpers.EscapeClassChar(next))
		}
		s.advance(2)
	case c == '[':
		if body, n, ok := wc_helpers.PosixClassAt(s.src, s.pos); ok {
			s.emit(body)
			s.advance(n)
			return
		}
		s.emit(`\[`)
		s.advance(1)
	default:
		if s.pos+2 < len(s.src) && s.src[s.pos+1] == '-' && s.src[s.pos+2] != ']' {
			// reversed or escaped range ends are kept as plain members
			if end := s.src[s.pos+2]; end < c || end == '\\' || end == '[' {
				s.emit(wc_helpers.EscapeClassChar(c) + `\-`)
				s.advance(2)
				return
			}
		}
		s.emit(wc_helpers.EscapeClassChar(c))
		s.advance(1)
	}
}
