// Package lineage implements the face lineage tracker. It maps a face's
// current kernel identity to the stable identity that survives kernel
// copy-on-edit operations.
package lineage

import (
	"sync"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
)

var _ ports.LineageTracker = (*Tracker)(nil)

// Tracker is an in-memory lineage table. The kernel binds and rebinds
// entries as faces are created and edited; cache layers only read.
type Tracker struct {
	mu       sync.RWMutex
	lineages map[domain.FaceID]domain.LineageID
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		lineages: make(map[domain.FaceID]domain.LineageID),
	}
}

// LineageOf returns the lineage id of the face's current identity, or false
// when the face has no resolvable lineage.
func (t *Tracker) LineageOf(face domain.FaceID) (domain.LineageID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	l, ok := t.lineages[face]
	return l, ok
}

// Bind registers the lineage of a newly created face.
func (t *Tracker) Bind(face domain.FaceID, l domain.LineageID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lineages[face] = l
}

// Rebind moves a lineage from a face's previous identity to its current one
// after a kernel copy-on-edit. An unknown previous identity leaves the new
// identity unresolved, which simply makes the face cache-ineligible.
func (t *Tracker) Rebind(old, current domain.FaceID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.lineages[old]
	if !ok {
		return
	}
	delete(t.lineages, old)
	t.lineages[current] = l
}

// Forget removes the binding of a face's current identity. Subsequent
// lookups report the lineage as unresolved.
func (t *Tracker) Forget(face domain.FaceID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.lineages, face)
}
