// Package uid generates short random identifier strings and can
// guarantee uniqueness among the identifiers it has produced.
//
// Standalone functions produce random strings with no uniqueness
// tracking:
//
//	id := uid.RandomString(8)
//	id := uid.HumanRandomString(8)
//	id := uid.RandomNumber(10)
//
// Numbers convert to and from a compact base62 form:
//
//	s := uid.NumberToUID(1000)
//	n, ok := uid.UIDToNumber(s)
//
// A Store hands out identifiers that are unique for its lifetime,
// which matters when identifiers are short enough for collisions to
// be likely:
//
//	store := uid.New(6)
//	id := store.Next()
//	n16 := store.NextU16()
//	n64 := store.NextU64()
//
// Uniqueness is tracked in memory, per Store instance only. Randomness
// is not cryptographically strong; do not use these identifiers as
// secrets.
package uid
