package wc_helpers

import "strings"

const (
	regexSpecials = `\^$.|?*+()[]{}`
	classSpecials = `\]^[`
	globSpecials  = `*?[]{}()!@+|,`
)

// IsRegexSpecial reports whether c has a meaning in a regular expression
// outside of a character class.
func IsRegexSpecial(c byte) bool {
	return strings.IndexByte(regexSpecials, c) >= 0
}

// IsGlobSpecial reports whether c can introduce or delimit a glob construct.
func IsGlobSpecial(c byte) bool {
	return strings.IndexByte(globSpecials, c) >= 0
}

// IsEscapable reports whether a backslash in front of c is an escape rather
// than a path separator.
func IsEscapable(c byte) bool {
	return IsRegexSpecial(c) || IsGlobSpecial(c) || c == '\'' || c == '"'
}

// IsSeparator reports whether c separates path segments.
func IsSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// IsExtGlobSigil reports whether c can prefix a pattern list.
func IsExtGlobSigil(c byte) bool {
	return c == '!' || c == '*' || c == '+' || c == '?' || c == '@'
}

// EscapeChar returns c as a regex literal.
func EscapeChar(c byte) string {
	if IsRegexSpecial(c) {
		return `\` + string(c)
	}
	return string(c)
}

// EscapeString escapes every regex metacharacter in s.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if IsRegexSpecial(s[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EscapeClassChar returns c as a literal member of a bracket expression.
// A dash is left alone so that ranges keep working.
func EscapeClassChar(c byte) string {
	if strings.IndexByte(classSpecials, c) >= 0 {
		return `\` + string(c)
	}
	return string(c)
}
