package glob

import (
	"path"
	"strings"
)

// Resolve joins a relative pattern onto base, keeping any leading negation
// in front of the result. Absolute patterns are returned unchanged.
func Resolve(base, pattern string) string {
	return ResolveWith(base, pattern, Options{})
}

// ResolveWith is Resolve with the negation rules of opts, so that with
// NoNegate a leading ! stays part of the joined path.
func ResolveWith(base, pattern string, opts Options) string {
	negation := negationPrefix(pattern, opts)
	p := pattern[len(negation):]
	if base == "" || path.IsAbs(p) || strings.HasPrefix(p, `\`) {
		return pattern
	}
	base = path.Clean(strings.ReplaceAll(base, `\`, "/"))
	switch {
	case p == "":
		return negation + base
	case base == ".":
		return pattern
	}
	return negation + strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(p, "./")
}
