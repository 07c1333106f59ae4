package glob

func (s *scanner) scanStar() {
	segStart := s.atSegmentStart(s.pos)
	n := 0
	for s.pos < len(s.src) && s.src[s.pos] == '*' && (n == 0 || !s.isPatternListAt(s.pos)) {
		n++
		s.advance(1)
	}

	guard := dotGuard(true, s.opts.Dot)
	if n == 2 && segStart && !s.opts.NoGlobStar {
		switch {
		case s.pos < len(s.src) && s.isSeparatorAt(s.pos):
			s.advance(1)
			s.sepEnd = s.pos
			s.emit("(?:" + guard + notSeparator + "+" + separator + ")*")
			return
		case s.pos == len(s.src) || s.stopsAt(s.pos):
			s.emit("(?:" + guard + notSeparator + "*(?:" + separator + guard + notSeparator + "*)*)")
			return
		}
	}
	s.emit(dotGuard(segStart, s.opts.Dot) + notSeparator + "*")
}
