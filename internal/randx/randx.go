// Package randx provides the pseudo random source behind the uid
// package: xoshiro256** (https://prng.di.unimi.it/), seeded from the
// wall clock on first use. It is fast and statistically solid but not
// cryptographically strong.
package randx

import (
	"math/bits"
	"sync"
	"time"
)

// Xoshiro is a xoshiro256** generator. The zero value seeds itself
// from the clock on first use. A Xoshiro is not safe for concurrent
// use; the package-level functions wrap a shared instance in a mutex.
type Xoshiro struct {
	s [4]uint64
}

// New returns a clock-seeded generator.
func New() *Xoshiro {
	x := &Xoshiro{}
	x.seed()
	return x
}

// NewFromState returns a generator with an explicit internal state,
// for reproducible sequences in tests. An all-zero state is replaced
// by a clock seed on the first draw.
func NewFromState(state [4]uint64) *Xoshiro {
	return &Xoshiro{s: state}
}

func (x *Xoshiro) seed() {
	now := uint64(time.Now().UnixNano())
	x.s = [4]uint64{
		now ^ 4690481050117892527,
		(now * 50000) ^ 13682126131931052725,
		now ^ 9639264971936262885,
		now ^ 6412797481073129502,
	}
}

// Uint64 returns the next value in the sequence.
func (x *Xoshiro) Uint64() uint64 {
	if x.s == [4]uint64{} {
		x.seed()
	}
	next := bits.RotateLeft64(x.s[1]*5, 7) * 9
	t := x.s[1] << 17
	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]
	x.s[2] ^= t
	x.s[3] = bits.RotateLeft64(x.s[3], 45)
	return next
}

// Uint32 returns the high half of the next 64-bit value.
func (x *Xoshiro) Uint32() uint32 {
	return uint32(x.Uint64() >> 32)
}

var (
	mu  sync.Mutex
	rnd Xoshiro
)

// Uint64 draws from the shared process-wide generator. Safe for
// concurrent use.
func Uint64() uint64 {
	mu.Lock()
	defer mu.Unlock()
	return rnd.Uint64()
}

// Uint32 draws 32 bits from the shared process-wide generator. Safe
// for concurrent use.
func Uint32() uint32 {
	mu.Lock()
	defer mu.Unlock()
	return rnd.Uint32()
}
