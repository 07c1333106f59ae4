package glob

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matches(t *testing.T, pattern string, opts Options, candidate string) bool {
	t.Helper()
	re, err := Parse(pattern, opts).Regexp()
	require.NoError(t, err, "pattern %q", pattern)
	ok, err := re.MatchString(candidate)
	require.NoError(t, err)
	return ok
}

type matchCase struct {
	pattern string
	opts    Options
	accept  []string
	reject  []string
}

func checkCases(t *testing.T, cases []matchCase) {
	t.Helper()
	for _, tc := range cases {
		for _, s := range tc.accept {
			assert.True(t, matches(t, tc.pattern, tc.opts, s), "%q should match %q (%s)", tc.pattern, s, Parse(tc.pattern, tc.opts))
		}
		for _, s := range tc.reject {
			assert.False(t, matches(t, tc.pattern, tc.opts, s), "%q should not match %q (%s)", tc.pattern, s, Parse(tc.pattern, tc.opts))
		}
	}
}

func TestParseSource(t *testing.T) {
	items := []struct {
		pattern string
		opts    Options
		source  string
	}{
		{"abc", Options{}, `^abc$`},
		{"a.b+c", Options{}, `^a\.b\+c$`},
		{"[[:foo:]]", Options{}, `^\[\[:foo:\]\]$`},
		{"!x", Options{NoNegate: true, Base: "src"}, `^src[\/\\]!x$`},
		{"!x", Options{Base: "src"}, `^(?!src[\/\\]x$)[\s\S]*$`},
		{"a{b,c}d", Options{}, `^a(?:b|c)d$`},
		{"a{b,}d", Options{}, `^a(?:b)?d$`},
		{"a{b,c", Options{}, `^a\{b,c$`},
		{"{a}", Options{}, `^\{a\}$`},
		{"{}", Options{}, `^\{\}$`},
		{"{5..12}", Options{}, `^(?:[5-9]|1[0-2])$`},
		{"{a..e}", Options{}, `^[a-e]$`},
		{"*.js", Options{}, `^(?!\.)[^\/\\]*\.js$`},
		{"*.js", Options{Dot: true}, `^[^\/\\]*\.js$`},
		{"a*", Options{}, `^a[^\/\\]*$`},
		{"a?", Options{}, `^a[^\/\\]$`},
		{"a/b", Options{}, `^a[\/\\]b$`},
		{"a/**/b", Options{}, `^a[\/\\](?:(?!\.)[^\/\\]+[\/\\])*b$`},
		{"a/**", Options{Dot: true}, `^a[\/\\](?:[^\/\\]*(?:[\/\\][^\/\\]*)*)$`},
		{"a/**/b", Options{NoGlobStar: true}, `^a[\/\\](?!\.)[^\/\\]*[\/\\]b$`},
		{"[abc]", Options{}, `^[abc]$`},
		{"[!abc]", Options{}, `^[^\/\\abc]$`},
		{"[]]", Options{}, `^[\]]$`},
		{"[[:digit:]x]", Options{}, `^[0-9x]$`},
		{"[a", Options{}, `^\[a$`},
		{"+(a|b)c", Options{}, `^(?:a|b)+c$`},
		{"@(a|b)", Options{}, `^(?:a|b)$`},
		{"x*(a|b)", Options{}, `^x(?:a|b)*$`},
		{"x?(a|b)", Options{}, `^x(?:a|b)?$`},
		{"+(a|b", Options{}, `^\+\(a\|b$`},
		{"+(a|b)", Options{NoExtGlob: true}, `^\+\(a\|b\)$`},
		{"!(a).js", Options{}, `^(?:(?!(?:a)\.js$)(?!\.)[^\/\\]*?)\.js$`},
		{"!abc", Options{}, `^(?!abc$)[\s\S]*$`},
		{"!!abc", Options{}, `^abc$`},
		{"!abc", Options{NoNegate: true}, `^!abc$`},
		{"'*.js'", Options{}, `^\*\.js$`},
		{`\*.js`, Options{}, `^\*\.js$`},
		{"{a,b}", Options{NoBrace: true}, `^\{a,b\}$`},
		{"", Options{}, `^$`},
	}

	for _, item := range items {
		assert.Equal(t, item.source, Parse(item.pattern, item.opts).Source, "pattern %q", item.pattern)
	}
}

func TestParseFlags(t *testing.T) {
	assert.Equal(t, "", Parse("a", Options{}).Flags)
	assert.Equal(t, "i", Parse("a", Options{NoCase: true}).Flags)
	assert.True(t, matches(t, "*.JS", Options{NoCase: true}, "app.js"))
	assert.False(t, matches(t, "*.JS", Options{}, "app.js"))
}

func TestParseIdempotent(t *testing.T) {
	for _, p := range []string{"a/**/b/{1..20}/*.@(js|ts)", "!(x)*", "[[:alpha:]]?{a,b,}", "!src/**"} {
		assert.Equal(t, Parse(p, Options{}), Parse(p, Options{}))
	}
}

func TestParseLiteralFallback(t *testing.T) {
	for _, s := range []string{"abc", "a.b", "a+b", "a^b$c", "x|y", "a=b&c", "hello world", "file(1)", "a,b", "100%"} {
		assert.True(t, matches(t, s, Options{}, s), "literal %q", s)
		assert.False(t, matches(t, s, Options{}, s+"x"), "literal %q", s)
	}
}

func TestParseBraces(t *testing.T) {
	checkCases(t, []matchCase{
		{pattern: "a{b,c}d", accept: []string{"abd", "acd"}, reject: []string{"ad", "abcd", "a{b,c}d"}},
		{pattern: "a{b,}d", accept: []string{"abd", "ad"}, reject: []string{"acd"}},
		{pattern: "a{b,c", accept: []string{"a{b,c"}, reject: []string{"ab", "ac"}},
		{pattern: "{a,{b,c}}x", accept: []string{"ax", "bx", "cx"}, reject: []string{"x", "{b,c}x"}},
		{pattern: "{a,[bc]}", accept: []string{"a", "b", "c"}, reject: []string{"[bc]"}},
		{pattern: "{a,b}", opts: Options{NoBrace: true}, accept: []string{"{a,b}"}, reject: []string{"a"}},
	})
}

func TestParseRanges(t *testing.T) {
	checkCases(t, []matchCase{
		{pattern: "file{5..12}.txt", accept: []string{"file5.txt", "file9.txt", "file10.txt", "file12.txt"}, reject: []string{"file4.txt", "file13.txt", "file05.txt", "file50.txt"}},
		{pattern: "{01..10}", accept: []string{"01", "09", "10"}, reject: []string{"1", "00", "11"}},
		{pattern: "{-3..3}", accept: []string{"-3", "-1", "0", "3"}, reject: []string{"-4", "4", "-0"}},
		{pattern: "{1..10..3}", accept: []string{"1", "4", "7", "10"}, reject: []string{"2", "3", "13"}},
		{pattern: "{a..e}", accept: []string{"a", "c", "e"}, reject: []string{"f", "A"}},
		{pattern: "{a..e..2}", accept: []string{"a", "c", "e"}, reject: []string{"b", "d"}},
		{pattern: "{e..a}", accept: []string{"a", "e"}, reject: []string{"f"}},
		{pattern: "{1..}", accept: []string{"{1..}"}, reject: []string{"1"}},
	})
}

func TestParseStars(t *testing.T) {
	checkCases(t, []matchCase{
		{pattern: "*.js", accept: []string{"app.js", "a.b.js"}, reject: []string{".app.js", "lib/app.js"}},
		{pattern: "*.js", opts: Options{Dot: true}, accept: []string{".app.js"}, reject: []string{"lib/app.js"}},
		{pattern: "a*b", accept: []string{"ab", "axxb", "a.b"}, reject: []string{"a/b"}},
		{pattern: "?.txt", accept: []string{"a.txt"}, reject: []string{".txt", "ab.txt"}},
		{pattern: "a/**/b", accept: []string{"a/b", "a/x/b", "a/x/y/b", `a\x\b`}, reject: []string{"a/.hidden/b", "a/xb", "b"}},
		{pattern: "a/**/b", opts: Options{Dot: true}, accept: []string{"a/.hidden/b"}},
		{pattern: "a/**", accept: []string{"a/", "a/x", "a/x/y"}, reject: []string{"a/.x", "b/x"}},
		{pattern: "**/*.go", accept: []string{"main.go", "cmd/root.go", "a/b/c.go"}, reject: []string{".git/x.go", "main.gox"}},
		{pattern: "a/**/b", opts: Options{NoGlobStar: true}, accept: []string{"a/x/b"}, reject: []string{"a/b", "a/x/y/b"}},
		{pattern: "a**b", accept: []string{"axb"}, reject: []string{"a/b"}},
	})
}

func TestParseClasses(t *testing.T) {
	checkCases(t, []matchCase{
		{pattern: "[abc]", accept: []string{"a", "c"}, reject: []string{"d", ""}},
		{pattern: "[!abc]", accept: []string{"d"}, reject: []string{"a", "/"}},
		{pattern: "[^abc]", accept: []string{"d"}, reject: []string{"b"}},
		{pattern: "[a-c]x", accept: []string{"bx"}, reject: []string{"dx"}},
		{pattern: "[]]", accept: []string{"]"}, reject: []string{"a"}},
		{pattern: "[[:digit:]]", accept: []string{"7"}, reject: []string{"a"}},
		{pattern: "[[:alpha:][:digit:]]", accept: []string{"a", "Z", "5"}, reject: []string{"_"}},
		{pattern: "[[:upper:]]*", accept: []string{"Readme"}, reject: []string{"readme"}},
		{pattern: "[a", accept: []string{"[a"}, reject: []string{"a"}},
		{pattern: `[\]a]`, accept: []string{"]", "a"}, reject: []string{`\`}},
		{pattern: "[*?]", accept: []string{"*", "?"}, reject: []string{"a"}},
		{pattern: "[[:foo:]]", accept: []string{"[[:foo:]]"}, reject: []string{"f]", ":]", "[]"}},
		{pattern: "x[[:nope:]a]", accept: []string{"x[[:nope:]a]"}, reject: []string{"xa]", "x:"}},
		{pattern: "[z-a]", accept: []string{"z", "-", "a"}, reject: []string{"m"}},
		{pattern: "[a-[:digit:]]", accept: []string{"a", "-", "4"}, reject: []string{"b"}},
	})
}

func TestParseExtGlob(t *testing.T) {
	checkCases(t, []matchCase{
		{pattern: "+(a|b)c", accept: []string{"ac", "abac"}, reject: []string{"c", "xc"}},
		{pattern: "x*(a|b)", accept: []string{"x", "xab"}, reject: []string{"xc"}},
		{pattern: "x?(a|b)", accept: []string{"x", "xa"}, reject: []string{"xab"}},
		{pattern: "@(a|b)", accept: []string{"a", "b"}, reject: []string{"ab", ""}},
		{pattern: "!(a).js", accept: []string{"b.js", "ab.js", "aa.js"}, reject: []string{"a.js", ".js"}},
		{pattern: "!(*.d).ts", accept: []string{"index.ts"}, reject: []string{"index.d.ts"}},
		{pattern: "lib/!(test)/*.go", accept: []string{"lib/core/a.go"}, reject: []string{"lib/test/a.go"}},
		{pattern: "+(a|b", accept: []string{"+(a|b"}, reject: []string{"a"}},
	})
}

func TestParseNegation(t *testing.T) {
	checkCases(t, []matchCase{
		{pattern: "!abc", accept: []string{"", "ab", "abcd", "xyz", "a/b"}, reject: []string{"abc"}},
		{pattern: "!*.js", accept: []string{"a.ts", "lib/a.js"}, reject: []string{"a.js"}},
		{pattern: "!!abc", accept: []string{"abc"}, reject: []string{"abd"}},
		{pattern: "!abc", opts: Options{NoNegate: true}, accept: []string{"!abc"}, reject: []string{"xyz"}},
	})
}

func TestParseQuotesAndEscapes(t *testing.T) {
	checkCases(t, []matchCase{
		{pattern: "'*.js'", accept: []string{"*.js"}, reject: []string{"a.js"}},
		{pattern: `"a{b,c}"`, accept: []string{"a{b,c}"}, reject: []string{"ab"}},
		{pattern: `it's`, accept: []string{"it's"}},
		{pattern: `\*`, accept: []string{"*"}, reject: []string{"a"}},
		{pattern: `a\{b,c\}`, accept: []string{"a{b,c}"}, reject: []string{"ab"}},
		{pattern: `a\b`, accept: []string{"a/b", `a\b`}, reject: []string{"ab"}},
	})
}

func TestParseBase(t *testing.T) {
	checkCases(t, []matchCase{
		{pattern: "*.js", opts: Options{Base: "src"}, accept: []string{"src/a.js"}, reject: []string{"a.js"}},
		{pattern: "!*.js", opts: Options{Base: "src"}, accept: []string{"a.js", "src/a.ts"}, reject: []string{"src/a.js"}},
		{pattern: "/abs/*.js", opts: Options{Base: "src"}, accept: []string{"/abs/a.js"}},
	})
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"{", "}", "[", "]", "(", ")", "!", "!(", "@(", "*(", "\\", "'", `"`, "{,", "{a,b", "[!",
		"[]", "[!]", "{{}}", "{[}]}", "+(a|[)]", "a/**(", "**/**", "!(a|!(b))c", "{1..2..0}",
		"{99999999999999999999..1}", "{1..100000000..1}", "{-5..5..2}", "[[:bogus:]]", "[[:alpha:",
		"[z-a]", "[a-[:digit:]]", "[a-\\]]", "{z..a..3}", "{!..~}",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			_, err := Parse(in, Options{}).Regexp()
			assert.NoError(t, err, "pattern %q compiled to invalid regex %s", in, Parse(in, Options{}))
		}, "pattern %q", in)
	}
}

func TestParseNestedBracesStaysLinear(t *testing.T) {
	for _, open := range []string{"{", "+(", "[", "{a,"} {
		closer := map[string]string{"{": "}", "+(": ")", "[": "]", "{a,": "}"}[open]
		pattern := strings.Repeat(open, 64) + "a" + strings.Repeat(closer, 64)
		start := time.Now()
		_, err := Parse(pattern, Options{}).Regexp()
		assert.NoError(t, err)
		assert.Less(t, time.Since(start), 2*time.Second, "pattern %q", pattern)
	}

	pattern := strings.Repeat("{", 64) + "a" + strings.Repeat("}", 64)
	want := "^" + strings.Repeat(`\{`, 64) + "a" + strings.Repeat(`\}`, 64) + "$"
	assert.Equal(t, want, Parse(pattern, Options{}).Source)
	assert.True(t, matches(t, pattern, Options{}, pattern))
}
