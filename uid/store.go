package uid

// DefaultLength is the string length used when a Store is constructed
// with a non-positive default.
const DefaultLength = 8

// Store holds every identifier it has issued so that a value is only
// ever handed out once, which matters when identifiers are short
// enough for collisions to be likely. Numeric identifiers share one
// uniqueness space with string identifiers through their base62 form.
//
// A Store is not safe for concurrent use. Callers that share one
// across goroutines must synchronize access themselves.
type Store struct {
	defaultLength int
	src           Source
	items         map[string]struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithSource sets the random source used for generation. The default
// is the shared process-wide generator. Mainly useful for
// deterministic sequences in tests.
func WithSource(src Source) Option {
	return func(s *Store) {
		if src != nil {
			s.src = src
		}
	}
}

// New returns an empty Store. defaultLength is the string length used
// by Next and by MakeUnique replacements; values <= 0 fall back to
// DefaultLength.
func New(defaultLength int, opts ...Option) *Store {
	if defaultLength <= 0 {
		defaultLength = DefaultLength
	}
	s := &Store{
		defaultLength: defaultLength,
		src:           defaultSource{},
		items:         make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next generates a full-charset string of the store's default length
// that has not been issued before, records it, and returns it.
//
// The retry loop is unbounded: on a keyspace close to saturation
// (single-character identifiers after 62 calls, say) it will spin
// forever. Callers are expected to pick lengths that keep this a
// theoretical case.
func (s *Store) Next() string {
	return s.NextLen(s.defaultLength)
}

// NextLen is Next with an explicit length for this call only.
func (s *Store) NextLen(length int) string {
	for {
		id := sample(s.src, FullCharset, length)
		if s.insert(id) {
			return id
		}
	}
}

// NextHuman generates a unique identifier from HumanCharset, avoiding
// commonly confused characters such as 0/O and 1/l/I.
func (s *Store) NextHuman(length int) string {
	for {
		id := sample(s.src, HumanCharset, length)
		if s.insert(id) {
			return id
		}
	}
}

// NextU16 draws a uniformly random uint16 whose base62 form has not
// been issued before, records that string form, and returns the
// number. The store's default length does not apply; the width is
// fixed by the type.
func (s *Store) NextU16() uint16 {
	for {
		n := uint16(s.src.Uint64())
		if s.insert(NumberToUID(uint64(n))) {
			return n
		}
	}
}

// NextU32 is NextU16 at 32-bit width.
func (s *Store) NextU32() uint32 {
	for {
		n := uint32(s.src.Uint64())
		if s.insert(NumberToUID(uint64(n))) {
			return n
		}
	}
}

// NextU64 is NextU16 at 64-bit width.
func (s *Store) NextU64() uint64 {
	for {
		n := s.src.Uint64()
		if s.insert(NumberToUID(n)) {
			return n
		}
	}
}

// MakeUnique checks a caller-supplied identifier against the store.
// When candidate has not been seen before it is recorded and
// ("", false) is returned: the input was already unique and no
// replacement was needed. When candidate is already in use, a fresh
// identifier at the store's default length is generated, recorded,
// and returned with replaced set to true.
func (s *Store) MakeUnique(candidate string) (replacement string, replaced bool) {
	if _, exists := s.items[candidate]; exists {
		return s.Next(), true
	}
	s.items[candidate] = struct{}{}
	return "", false
}

// Contains reports whether id has already been issued by or recorded
// in this store.
func (s *Store) Contains(id string) bool {
	_, ok := s.items[id]
	return ok
}

// Size returns how many identifiers the store has recorded.
func (s *Store) Size() int {
	return len(s.items)
}

func (s *Store) insert(id string) bool {
	if _, exists := s.items[id]; exists {
		return false
	}
	s.items[id] = struct{}{}
	return true
}
