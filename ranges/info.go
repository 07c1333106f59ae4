// Package ranges compiles bounded numeric and alphabetic brace ranges into
// regular expression fragments without enumerating every value.
package ranges

import (
	"strconv"
	"strings"
)

// RangeValue is one bound of a range, described by its decimal digits.
type RangeValue struct {
	Value  uint64
	Digits string
	// Ceiling is the first digit followed by zeros, e.g. 400 for 437.
	Ceiling string
}

func NewRangeValue(v uint64) RangeValue {
	d := strconv.FormatUint(v, 10)
	return RangeValue{
		Value:   v,
		Digits:  d,
		Ceiling: d[:1] + strings.Repeat("0", len(d)-1),
	}
}

// IsCeiling reports whether every digit after the leading one is zero.
func (v RangeValue) IsCeiling() bool {
	return v.Digits == v.Ceiling
}

// RangeInfo pairs two bounds of the same sign.
type RangeInfo struct {
	Start RangeValue
	End   RangeValue
	Sign  string
	// Intersection is the index of the last leading digit both bounds share,
	// or -1 when they differ from the first digit or have different lengths.
	Intersection int
}

func NewRangeInfo(start, end uint64) RangeInfo {
	info := RangeInfo{
		Start:        NewRangeValue(start),
		End:          NewRangeValue(end),
		Intersection: -1,
	}
	a, b := info.Start.Digits, info.End.Digits
	if len(a) != len(b) {
		return info
	}
	for i := 0; i < len(a) && a[i] == b[i]; i++ {
		info.Intersection = i
	}
	return info
}

// Negative returns a copy of info describing the mirrored negative range.
func (info RangeInfo) Negative() RangeInfo {
	info.Sign = "-"
	return info
}

// Width returns the zero padding width implied by two range operands: the
// digit count of the longer operand written with a leading zero, or 0.
func Width(a, b string) int {
	width := 0
	for _, op := range []string{a, b} {
		op = strings.TrimPrefix(op, "-")
		if len(op) > 1 && op[0] == '0' && len(op) > width {
			width = len(op)
		}
	}
	return width
}
