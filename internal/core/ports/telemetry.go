package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for recording tessellation progress.
type Tracer interface {
	// Record starts recording a new vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Logf records a formatted progress message on the vertex.
	Logf(format string, args ...any)
	// Cached marks the vertex as served from cache.
	Cached()
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
