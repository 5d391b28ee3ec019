package uid

import (
	"math"
	"strings"
)

const base62 = uint64(len(FullCharset))

// NumberToUID encodes n in base 62 using FullCharset as the digit
// alphabet: A=0..Z=25, a=26..z=51, '0'=52..'9'=61. Digits are emitted
// least significant first, so NumberToUID(62) == "AB". Zero encodes
// to "A", never the empty string. Equal inputs produce equal outputs
// and distinct inputs produce distinct outputs.
func NumberToUID(n uint64) string {
	if n == 0 {
		return "A"
	}
	var b strings.Builder
	for n > 0 {
		b.WriteByte(FullCharset[n%base62])
		n /= base62
	}
	return b.String()
}

// UIDToNumber decodes a base62 string produced by NumberToUID back
// into its numeric value. It returns false when s is empty, contains
// a character outside FullCharset, or the decoded magnitude does not
// fit in a uint64.
func UIDToNumber(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	var n uint64
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := digitValue(s[i])
		if !ok {
			return 0, false
		}
		if n > (math.MaxUint64-v)/base62 {
			return 0, false
		}
		n = n*base62 + v
	}
	return n, true
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return uint64(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 26, true
	case c >= '0' && c <= '9':
		return uint64(c-'0') + 52, true
	default:
		return 0, false
	}
}
