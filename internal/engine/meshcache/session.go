package meshcache

import (
	"context"

	"go.trai.ch/facet/internal/core/domain"
	"go.trai.ch/facet/internal/core/ports"
)

// Builder constructs caching sessions over a base tessellation strategy.
// One Builder is shared for the process lifetime; each session gets its own
// fresh cache pair.
type Builder struct {
	mesher  ports.FaceMesher
	basic   ports.Mesher
	kernel  ports.GeometryKernel
	tracker ports.LineageTracker
}

// NewBuilder creates a session builder over the given strategies.
func NewBuilder(
	mesher ports.FaceMesher,
	basic ports.Mesher,
	kernel ports.GeometryKernel,
	tracker ports.LineageTracker,
) *Builder {
	return &Builder{
		mesher:  mesher,
		basic:   basic,
		kernel:  kernel,
		tracker: tracker,
	}
}

var _ ports.Mesher = (*Session)(nil)

// Session is the scoped cache pair installed around one batch of redraw
// operations. It is only valid inside the WithCaching callback that created
// it; both tables are discarded when the callback returns.
type Session struct {
	objects *ObjectCache
	faces   *FaceCache
}

// Create serves the request through ObjectCache(FaceCache(base)).
func (s *Session) Create(ctx context.Context, req *domain.MeshRequest) (*domain.MeshResult, error) {
	return s.objects.Create(ctx, req)
}

// SessionStats aggregates the counters of both cache layers.
type SessionStats struct {
	Objects ObjectStats
	Faces   FaceStats
}

// Stats returns the session's cumulative cache counters.
func (s *Session) Stats() SessionStats {
	return SessionStats{
		Objects: s.objects.Stats(),
		Faces:   s.faces.Stats(),
	}
}

// WithCaching installs a fresh ObjectCache/FaceCache pair, runs op against
// it, and discards both tables on every exit path. No cache entry outlives
// the session.
func (b *Builder) WithCaching(op func(*Session) error) error {
	faces := NewFaceCache(b.mesher, b.basic, b.kernel, b.tracker)
	session := &Session{
		objects: NewObjectCache(faces),
		faces:   faces,
	}
	defer func() {
		session.objects.Clear()
		session.faces.Clear()
	}()
	return op(session)
}

// WithoutCaching runs op against the bare base strategy. Every Create call
// recomputes; nothing is memoized. Intended for one-shot work such as
// exports where a cache would only hold memory.
func (b *Builder) WithoutCaching(op func(ports.Mesher) error) error {
	return op(b.mesher)
}
