// Package glob compiles extended shell glob patterns into regular
// expressions and splits patterns into a literal base and a wildcard part.
//
// Supported syntax: * ? [...] with POSIX shorthands, {a,b} alternation,
// {1..10[..step]} and {a..z[..step]} ranges, extglob pattern lists
// !() @() *() +() ?(), ** globstar, quoting, backslash escapes and a
// leading ! negation. Malformed constructs are matched literally.
package glob

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// CompiledPattern is the regular expression a glob compiles to.
type CompiledPattern struct {
	Source string `json:"source"`
	Flags  string `json:"flags"`
}

// Regexp compiles the pattern with the host engine. The sources use
// lookahead, which the standard library's RE2 engine does not support.
func (p CompiledPattern) Regexp() (*regexp2.Regexp, error) {
	opts := regexp2.None
	if strings.Contains(p.Flags, "i") {
		opts |= regexp2.IgnoreCase
	}
	return regexp2.Compile(p.Source, opts)
}

func (p CompiledPattern) String() string {
	return fmt.Sprintf("/%s/%s", p.Source, p.Flags)
}

// Parse compiles pattern. It never fails: constructs that are unterminated
// or empty fall back to matching their characters literally.
func Parse(pattern string, opts Options) CompiledPattern {
	if opts.Base != "" && pattern != "" {
		pattern = ResolveWith(opts.Base, pattern, opts)
	}
	body, negated := newScanner(pattern, opts).run()

	source := "^" + body + "$"
	if negated {
		source = `^(?!` + body + `$)[\s\S]*$`
	}
	flags := ""
	if opts.NoCase {
		flags = "i"
	}
	return CompiledPattern{Source: source, Flags: flags}
}

func (s *scanner) run() (string, bool) {
	negated := false
	if !s.opts.NoNegate {
		for s.pos < len(s.src) && s.src[s.pos] == '!' && !s.isPatternListAt(s.pos) {
			negated = !negated
			s.advance(1)
		}
	}
	s.top().altStart = s.pos
	depth := 1
	if negated {
		f := s.push(kindNegation)
		f.altStart = s.pos
		f.segStart = true
		depth++
	}

	s.scanPattern()
	if s.pos != len(s.src) || len(s.frames) != depth {
		panic(fmt.Sprintf("glob: scanner stopped at %d of %q with %d open frames", s.pos, s.src, len(s.frames)))
	}
	body := s.top().flush("$", s.opts.Dot)
	if negated {
		s.pop()
	}
	return body, negated
}
