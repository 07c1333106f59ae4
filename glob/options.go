package glob

// Options tune how a pattern is compiled. The zero value enables every
// construct and hides dotfiles.
type Options struct {
	// Dot lets wildcards match a leading dot in a path segment.
	Dot bool
	// NoBrace treats { and } as literals.
	NoBrace bool
	// NoCase marks the compiled pattern case-insensitive.
	NoCase bool
	// NoExtGlob treats !() @() *() +() ?() as plain characters.
	NoExtGlob bool
	// NoGlobStar makes ** behave like *.
	NoGlobStar bool
	// NoNegate treats a leading ! as a literal.
	NoNegate bool
	// Base is joined in front of relative patterns.
	Base string
}
