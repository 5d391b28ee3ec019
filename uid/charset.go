package uid

const (
	// FullCharset is the complete alphanumeric alphabet used for random
	// sampling. Its order is load-bearing: it doubles as the base62
	// digit alphabet for NumberToUID and UIDToNumber, with A=0 through
	// '9'=61.
	FullCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// HumanCharset is FullCharset minus characters that are easily
	// confused in many fonts: 0 O o 1 I i l L.
	HumanCharset = "ABCDEFGHJKMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

	// DigitCharset is the decimal digits, for numeric-looking tokens.
	DigitCharset = "0123456789"
)
