package glob

// IsNegated reports whether pattern starts with an odd number of negating
// exclamation marks.
func IsNegated(pattern string, opts Options) bool {
	return len(negationPrefix(pattern, opts))%2 == 1
}
