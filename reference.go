package kinetic

import "unsafe"

// CollisionReference marks an unordered pair of particles as resolved in the
// current tick.
type CollisionReference struct {
	A, B *Particle
}

// particlePair is CollisionReference with its members sorted by address so that
// (a, b) and (b, a) map to the same key.
type particlePair struct {
	lo, hi *Particle
}

func pairKey(a, b *Particle) particlePair {
	if uintptr(unsafe.Pointer(a)) > uintptr(unsafe.Pointer(b)) {
		a, b = b, a
	}
	return particlePair{a, b}
}

// ReferenceTracker records which pairs were already resolved during a tick.
// The zero value is ready to use.
type ReferenceTracker struct {
	processed map[particlePair]struct{}
}

// NewReferenceTracker returns an empty tracker.
func NewReferenceTracker() *ReferenceTracker {
	return &ReferenceTracker{processed: make(map[particlePair]struct{})}
}

// IsProcessed returns true if the unordered pair (a, b) was added since the
// last ClearReferences.
func (rt *ReferenceTracker) IsProcessed(a, b *Particle) bool {
	_, ok := rt.processed[pairKey(a, b)]
	return ok
}

// AddReference records ref as processed.
func (rt *ReferenceTracker) AddReference(ref CollisionReference) {
	if rt.processed == nil {
		rt.processed = make(map[particlePair]struct{})
	}
	rt.processed[pairKey(ref.A, ref.B)] = struct{}{}
}

// ClearReferences forgets every recorded pair.
func (rt *ReferenceTracker) ClearReferences() {
	clear(rt.processed)
}

// Len returns the number of recorded pairs.
func (rt *ReferenceTracker) Len() int {
	return len(rt.processed)
}
