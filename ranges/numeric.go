package ranges

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// MaxMagnitude bounds the absolute value of range operands.
	MaxMagnitude = 1_000_000_000_000_000_000
	// MaxEnumeration bounds the number of values a stepped range may list.
	MaxEnumeration = 1 << 14
)

var (
	ErrRangeTooLarge = errors.New("ranges: range too large to enumerate")
	ErrOutOfBounds   = errors.New("ranges: operand out of bounds")
)

// Numeric compiles the integers start, start+step, ... up to end into a
// regex fragment. Values shorter than minDigits are left-padded with zeros.
// A step of 0 is treated as 1 and its sign is ignored.
func Numeric(start, end, step int64, minDigits int) (string, error) {
	if start < -MaxMagnitude || start > MaxMagnitude || end < -MaxMagnitude || end > MaxMagnitude {
		return "", ErrOutOfBounds
	}
	step = abs(step)
	if step == 0 {
		step = 1
	}
	if step > 1 {
		return enumerate(start, end, step, minDigits)
	}
	if start > end {
		start, end = end, start
	}

	var neg, pos []string
	if start < 0 {
		lo := uint64(1)
		if end < 0 {
			lo = uint64(-end)
		}
		neg = compileUnsigned(NewRangeInfo(lo, uint64(-start)).Negative(), minDigits)
	}
	if end >= 0 {
		lo := uint64(0)
		if start > 0 {
			lo = uint64(start)
		}
		pos = compileUnsigned(NewRangeInfo(lo, uint64(end)), minDigits)
	}
	return combine(neg, pos), nil
}

// compileUnsigned splits [start, end] by digit count and decomposes each
// same-length slice by digit position.
func compileUnsigned(info RangeInfo, width int) []string {
	var out []string
	lo, hi := info.Start.Value, info.End.Value
	for n := len(info.Start.Digits); n <= len(info.End.Digits); n++ {
		from, to := lo, hi
		if floor := pow10(n - 1); n > 1 && floor > from {
			from = floor
		}
		if top := pow10(n) - 1; top < to {
			to = top
		}
		pad := ""
		if width > n {
			pad = strings.Repeat("0", width-n)
		}
		for _, alt := range splitSameLength(NewRangeInfo(from, to)) {
			out = append(out, pad+alt)
		}
	}
	return out
}

// splitSameLength covers a range whose bounds have equal digit counts.
func splitSameLength(info RangeInfo) []string {
	lo, hi := info.Start.Digits, info.End.Digits
	if lo == hi {
		return []string{lo}
	}
	i := info.Intersection + 1
	prefix := lo[:i]
	a, b := lo[i], hi[i]
	n := len(lo) - i - 1
	loTail, hiTail := lo[i+1:], hi[i+1:]
	floor := isRun(loTail, '0')
	top := isRun(hiTail, '9')
	if floor && top {
		return []string{prefix + digitClass(a, b) + anyDigits(n)}
	}

	var out []string
	first, last := a, b
	if !floor {
		for _, alt := range splitSameLength(tailInfo(loTail, strings.Repeat("9", n))) {
			out = append(out, prefix+string(a)+alt)
		}
		first++
	}
	if !top {
		last--
	}
	if first <= last {
		out = append(out, prefix+digitClass(first, last)+anyDigits(n))
	}
	if !top {
		for _, alt := range splitSameLength(tailInfo(strings.Repeat("0", n), hiTail)) {
			out = append(out, prefix+string(b)+alt)
		}
	}
	return out
}

// tailInfo builds a RangeInfo over digit strings that may carry leading zeros.
func tailInfo(lo, hi string) RangeInfo {
	info := RangeInfo{
		Start:        RangeValue{Digits: lo, Ceiling: lo[:1] + strings.Repeat("0", len(lo)-1)},
		End:          RangeValue{Digits: hi, Ceiling: hi[:1] + strings.Repeat("0", len(hi)-1)},
		Intersection: -1,
	}
	info.Start.Value, _ = strconv.ParseUint(lo, 10, 64)
	info.End.Value, _ = strconv.ParseUint(hi, 10, 64)
	for i := 0; i < len(lo) && lo[i] == hi[i]; i++ {
		info.Intersection = i
	}
	return info
}

func enumerate(start, end, step int64, width int) (string, error) {
	if start > end {
		step = -step
	}
	count := (end-start)/step + 1
	if count > MaxEnumeration {
		return "", ErrRangeTooLarge
	}
	var neg, pos []string
	for v := start; (step > 0 && v <= end) || (step < 0 && v >= end); v += step {
		if v < 0 {
			neg = append(neg, pad(strconv.FormatInt(-v, 10), width))
		} else {
			pos = append(pos, pad(strconv.FormatInt(v, 10), width))
		}
	}
	return combine(neg, pos), nil
}

func combine(neg, pos []string) string {
	var alts []string
	if len(neg) > 0 {
		alts = append(alts, "-"+group(neg))
	}
	return group(append(alts, pos...))
}

func group(alts []string) string {
	if len(alts) == 1 {
		return alts[0]
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

func digitClass(a, b byte) string {
	switch {
	case a == b:
		return string(a)
	case a == '0' && b == '9':
		return `\d`
	}
	return "[" + string(a) + "-" + string(b) + "]"
}

func anyDigits(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return `\d`
	}
	return `\d{` + strconv.Itoa(n) + `}`
}

func isRun(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			return false
		}
	}
	return true
}

func pad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
