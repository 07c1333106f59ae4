package wc_helpers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeString(t *testing.T) {
	s := `a.b*c?(d)[e]{f}|g^h$i+j\k`
	assert.Equal(t, `a\.b\*c\?\(d\)\[e\]\{f\}\|g\^h\$i\+j\\k`, EscapeString(s))
	assert.True(t, regexp.MustCompile("^"+EscapeString(s)+"$").MatchString(s))
	assert.Equal(t, "plain-text_1", EscapeString("plain-text_1"))
}

func TestEscapeClassChar(t *testing.T) {
	assert.Equal(t, `\]`, EscapeClassChar(']'))
	assert.Equal(t, `\^`, EscapeClassChar('^'))
	assert.Equal(t, `\\`, EscapeClassChar('\\'))
	assert.Equal(t, "-", EscapeClassChar('-'))
	assert.Equal(t, "*", EscapeClassChar('*'))
}

func TestCharacterKinds(t *testing.T) {
	assert.True(t, IsSeparator('/'))
	assert.True(t, IsSeparator('\\'))
	assert.False(t, IsSeparator(':'))
	for _, c := range []byte("!*+?@") {
		assert.True(t, IsExtGlobSigil(c), string(c))
	}
	assert.False(t, IsExtGlobSigil('#'))
	assert.True(t, IsEscapable('\''))
	assert.True(t, IsEscapable('!'))
	assert.False(t, IsEscapable('n'))
}
