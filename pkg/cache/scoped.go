package cache

// ScopedKeyer wraps a Keyer with a prefix for tenant isolation. The
// preview service uses it to keep per-account render caches apart
// while sharing one Redis instance:
//
//	// Account-specific keys for draft creatives
//	accountKeyer := NewScopedKeyer(NewDefaultKeyer(), "acct:42:")
//
//	// Global keys for published creatives
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every
// generated key. A nil inner keyer falls back to the default.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) RecordKey(source, id string) string {
	return k.prefix + k.inner.RecordKey(source, id)
}

func (k *ScopedKeyer) RenderKey(recordHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(recordHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(renderHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(renderHash, opts)
}

var _ Keyer = (*ScopedKeyer)(nil)
