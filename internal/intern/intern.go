// Package intern provides a hash-keyed string interner used by the decoder
// to canonicalize repeated object keys.
//
// Line-delimited inputs tend to repeat the same member keys in every record,
// so the decoder interns key text through an xxHash64 table. The table keys
// on the 64-bit hash rather than the string itself to avoid a map of string
// keys; a verify-on-hit comparison guards against hash collisions, in which
// case the original string is returned un-interned.
package intern

import "github.com/cespare/xxhash/v2"

// Table maps xxHash64 digests to canonical strings.
// It is not safe for concurrent use; each decoder owns one table.
type Table struct {
	entries map[uint64]string
}

// NewTable creates an empty interner.
func NewTable() *Table {
	return &Table{entries: make(map[uint64]string)}
}

// Intern returns the canonical copy of s, registering it on first sight.
// On a hash collision the input is returned unchanged.
func (t *Table) Intern(s string) string {
	if s == "" {
		return ""
	}

	h := xxhash.Sum64String(s)
	if canonical, ok := t.entries[h]; ok {
		if canonical == s {
			return canonical
		}
		// Collision: different string, same digest. Do not replace the
		// registered entry; hand the caller its own string.
		return s
	}

	t.entries[h] = s

	return s
}

// Len returns the number of distinct strings registered.
func (t *Table) Len() int {
	return len(t.entries)
}
