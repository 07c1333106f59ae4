package ranges

import (
	"strings"

	"github.com/tempuslabs/globre/wc_helpers"
)

// Alpha compiles the characters start, start+step, ... toward end into a
// bracket expression. A step of 0 yields an empty fragment.
func Alpha(start, end byte, step int) string {
	if step == 0 {
		return ""
	}
	if step < 0 {
		step = -step
	}
	if step == 1 && start < end && sameCase(start, end) {
		return "[" + string(start) + "-" + string(end) + "]"
	}

	dir := step
	if start > end {
		dir = -step
	}
	var b strings.Builder
	members := 0
	for c := int(start); (dir > 0 && c <= int(end)) || (dir < 0 && c >= int(end)); c += dir {
		// a bare backslash is unsafe inside a class
		if c == '\\' {
			continue
		}
		if c == '-' {
			b.WriteString(`\-`)
		} else {
			b.WriteString(wc_helpers.EscapeClassChar(byte(c)))
		}
		members++
	}
	if members == 0 {
		return ""
	}
	return "[" + b.String() + "]"
}

func sameCase(a, b byte) bool {
	lower := func(c byte) bool { return c >= 'a' && c <= 'z' }
	upper := func(c byte) bool { return c >= 'A' && c <= 'Z' }
	return (lower(a) && lower(b)) || (upper(a) && upper(b))
}
