package wc_helpers

import "strings"

// posixClasses maps bracket shorthand names to class bodies.
var posixClasses = map[string]string{
	"alnum":  `a-zA-Z0-9`,
	"alpha":  `a-zA-Z`,
	"ascii":  `\x00-\x7F`,
	"blank":  ` \t`,
	"cntrl":  `\x00-\x1F\x7F`,
	"digit":  `0-9`,
	"graph":  `\x21-\x7E`,
	"lower":  `a-z`,
	"print":  `\x20-\x7E`,
	"punct":  "!-\\/:-@\\[-`{-~",
	"space":  ` \t\r\n\v\f`,
	"upper":  `A-Z`,
	"word":   `A-Za-z0-9_`,
	"xdigit": `A-Fa-f0-9`,
}

// PosixClassAt recognises a `[:name:]` shorthand starting at src[i]. It
// returns the class body and the number of bytes the shorthand spans.
func PosixClassAt(src string, i int) (string, int, bool) {
	if i+1 >= len(src) || src[i] != '[' || src[i+1] != ':' {
		return "", 0, false
	}
	end := strings.Index(src[i+2:], ":]")
	if end < 0 {
		return "", 0, false
	}
	body, ok := posixClasses[src[i+2:i+2+end]]
	if !ok {
		return "", 0, false
	}
	return body, end + 4, true
}

// UnknownPosixClassAt reports whether src[i] opens a `[:name:]` shorthand
// whose name is not in the table.
func UnknownPosixClassAt(src string, i int) bool {
	if i+1 >= len(src) || src[i] != '[' || src[i+1] != ':' {
		return false
	}
	end := strings.Index(src[i+2:], ":]")
	if end < 0 {
		return false
	}
	_, ok := posixClasses[src[i+2:i+2+end]]
	return !ok
}

// IsEscapeAt reports whether the backslash at src[i] escapes the next byte.
func IsEscapeAt(src string, i int) bool {
	return src[i] == '\\' && i+1 < len(src) && IsEscapable(src[i+1])
}

// FindClosing returns the index of the delimiter closing the one at
// src[open], honouring nesting and skipping escapes, or -1.
func FindClosing(src string, open int, openCh, closeCh byte) int {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '\\':
			if IsEscapeAt(src, i) {
				i++
			}
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// FindClassEnd returns the index of the `]` closing the bracket expression
// opened at src[open], or -1. A `]` right after the opening (and optional
// negation) is a member, not the terminator.
func FindClassEnd(src string, open int) int {
	i := open + 1
	if i < len(src) && (src[i] == '!' || src[i] == '^') {
		i++
	}
	if i < len(src) && src[i] == ']' {
		i++
	}
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case '[':
			if _, n, ok := PosixClassAt(src, i); ok {
				i += n
				continue
			}
		case ']':
			return i
		}
		i++
	}
	return -1
}

// FindQuoteEnd returns the index of the quote closing the one at src[open],
// or -1. Only double quotes honour backslash escapes.
func FindQuoteEnd(src string, open int) int {
	q := src[open]
	for i := open + 1; i < len(src); i++ {
		if q == '"' && src[i] == '\\' {
			i++
			continue
		}
		if src[i] == q {
			return i
		}
	}
	return -1
}
