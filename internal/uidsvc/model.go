package uidsvc

// Kind selects the shape of a minted identifier.
type Kind string

const (
	// KindString is a random string over the full alphanumeric charset.
	KindString Kind = "string"
	// KindHuman avoids visually confusable characters.
	KindHuman Kind = "human"
	// KindU16, KindU32 and KindU64 are random unsigned integers of the
	// given width, identified by their base62 form.
	KindU16 Kind = "u16"
	KindU32 Kind = "u32"
	KindU64 Kind = "u64"
)

// Valid reports whether k names a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindHuman, KindU16, KindU32, KindU64:
		return true
	default:
		return false
	}
}

// Numeric reports whether identifiers of this kind carry a numeric
// value alongside their string form.
func (k Kind) Numeric() bool {
	switch k {
	case KindU16, KindU32, KindU64:
		return true
	default:
		return false
	}
}

// MintRequest describes a batch of identifiers to issue.
type MintRequest struct {
	Kind   Kind
	Count  int // how many identifiers; 0 means 1
	Length int // string kinds only; 0 means the configured default
}

// MintedUID is a single issued identifier. UID is always the string
// form tracked for uniqueness; Number is meaningful only when Numeric
// is true.
type MintedUID struct {
	UID     string
	Number  uint64
	Numeric bool
}

// ClaimResult reports the outcome of claiming a caller-supplied
// identifier. When Accepted is true the candidate itself was recorded.
// Otherwise the candidate was already in use and Replacement holds a
// freshly issued identifier.
type ClaimResult struct {
	Accepted    bool
	Replacement string
}

// Stats is a snapshot of the store.
type Stats struct {
	Issued int
}
