package glob

import "strings"

func (s *scanner) scanPatternList() {
	if s.failed[s.pos] {
		s.scanLiteral()
		return
	}
	sigil := s.src[s.pos]
	f := s.push(kindPatternList)
	s.advance(2)
	f.bodyStart = s.pos

	var alts []string
	for {
		f.altStart = s.pos
		s.scanPattern()
		if s.pos >= len(s.src) {
			s.rollback()
			return
		}
		alts = append(alts, f.flush("", s.opts.Dot))
		c := s.src[s.pos]
		s.advance(1)
		if c == ')' {
			break
		}
	}

	group := "(?:" + strings.Join(alts, "|") + ")"
	switch sigil {
	case '!':
		s.pop()
		s.top().negate(group, f.segStart)
	case '*':
		s.commit(group + "*")
	case '+':
		s.commit(group + "+")
	case '?':
		s.commit(group + "?")
	default:
		s.commit(group)
	}
}
