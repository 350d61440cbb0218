package domain

// CacheRecord is the persisted combination set, keyed by the fingerprint
// of the universe that produced it. A record is replaced wholesale when
// the freshly computed fingerprint differs; there is no partial reuse.
type CacheRecord struct {
	Fingerprint  uint64
	Combinations []Combination
}

// Matches reports whether the record was produced by a universe with the
// given fingerprint.
func (r *CacheRecord) Matches(fingerprint uint64) bool {
	return r != nil && r.Fingerprint == fingerprint
}
