package glob

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tempuslabs/globre/ranges"
	"github.com/tempuslabs/globre/wc_helpers"
)

var (
	numericRange = regexp.MustCompile(`^(-?\d+)\.\.(-?\d+)(?:\.\.(-?\d+))?$`)
	alphaRange   = regexp.MustCompile(`^([a-zA-Z])\.\.([a-zA-Z])(?:\.\.(-?\d+))?$`)
)

func (s *scanner) scanBraces() {
	if s.failed[s.pos] || wc_helpers.FindClosing(s.src, s.pos, '{', '}') < 0 {
		s.scanLiteral()
		return
	}
	f := s.push(kindBraces)
	s.advance(1)
	f.bodyStart = s.pos

	var alts, bodies []string
	optional := false
	for {
		f.altStart = s.pos
		s.scanPattern()
		if s.pos >= len(s.src) {
			s.rollback()
			return
		}
		body := s.src[f.altStart:s.pos]
		alt := f.flush("", s.opts.Dot)
		if body == "" {
			optional = true
		} else {
			alts = append(alts, alt)
		}
		bodies = append(bodies, body)

		c := s.src[s.pos]
		s.advance(1)
		if c == '}' {
			break
		}
	}

	if len(bodies) == 1 {
		frag, ok := expandRange(bodies[0])
		if !ok {
			s.rollback()
			return
		}
		s.commit(frag)
		return
	}
	if len(alts) == 0 {
		s.commit("")
		return
	}
	group := "(?:" + strings.Join(alts, "|") + ")"
	if optional {
		group += "?"
	}
	s.commit(group)
}

// expandRange compiles a {a..b[..step]} body, reporting false when the body
// is not a valid range.
func expandRange(body string) (string, bool) {
	if m := numericRange.FindStringSubmatch(body); m != nil {
		start, err1 := strconv.ParseInt(m[1], 10, 64)
		end, err2 := strconv.ParseInt(m[2], 10, 64)
		step, err3 := parseStep(m[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return "", false
		}
		frag, err := ranges.Numeric(start, end, step, ranges.Width(m[1], m[2]))
		if err != nil {
			return "", false
		}
		return frag, true
	}
	if m := alphaRange.FindStringSubmatch(body); m != nil {
		step, err := parseStep(m[3])
		if err != nil {
			return "", false
		}
		if step == 0 {
			step = 1
		}
		return ranges.Alpha(m[1][0], m[2][0], int(step)), true
	}
	return "", false
}

func parseStep(text string) (int64, error) {
	if text == "" {
		return 1, nil
	}
	return strconv.ParseInt(text, 10, 32)
}
