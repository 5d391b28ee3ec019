package uid

import (
	"github.com/sundayezeilo/uidgen/internal/randx"
)

// Source is a stream of random 64-bit values. Sources from
// math/rand/v2 satisfy it, as does internal/randx.Xoshiro. A Source
// passed to WithSource does not need to be safe for concurrent use;
// the Store itself is single-threaded.
type Source interface {
	Uint64() uint64
}

// defaultSource draws from the shared process-wide generator, which is
// safe for concurrent use.
type defaultSource struct{}

func (defaultSource) Uint64() uint64 { return randx.Uint64() }

// RandomString returns a string of n characters, each sampled
// independently from FullCharset. n <= 0 yields the empty string.
// There is no uniqueness guarantee; see Store for that.
func RandomString(n int) string {
	return sample(defaultSource{}, FullCharset, n)
}

// HumanRandomString is RandomString over HumanCharset, for identifiers
// meant to be read or typed by people.
func HumanRandomString(n int) string {
	return sample(defaultSource{}, HumanCharset, n)
}

// RandomNumber returns a string of n decimal digits.
func RandomNumber(n int) string {
	return sample(defaultSource{}, DigitCharset, n)
}

func sample(src Source, charset string, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[src.Uint64()%uint64(len(charset))]
	}
	return string(b)
}
