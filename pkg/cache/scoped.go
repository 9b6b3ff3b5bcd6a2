package cache

import "strings"

// ScopedKeyer wraps a Keyer with a prefix. It keeps posthop entries apart from
// other data in a shared Redis database, and lets a result format change
// invalidate old entries by bumping the prefix.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "posthop:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey returns the inner key with the prefix prepended.
func (k *ScopedKeyer) ResultKey(matrixHash, algorithm string) string {
	return k.prefix + k.inner.ResultKey(matrixHash, algorithm)
}

// ScopePattern returns the Redis MATCH pattern covering every key produced by
// a ScopedKeyer with the given prefix. Glob metacharacters in the prefix are
// escaped so they match literally.
func ScopePattern(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('*')
	return b.String()
}
