// Package matrix: sentinel errors and functional options for projections.
package matrix

import (
	"errors"
)

// Sentinel errors for matrix construction and kernels.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a projection.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrInvalidDimensions indicates non-positive matrix dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare indicates an APSP kernel invoked on a non-square matrix.
	ErrNonSquare = errors.New("matrix: matrix must be square")

	// ErrDimensionMismatch indicates a successor table whose shape does not
	// match its distance matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// DefaultSelfDist is the diagonal value of weighted projections unless
// overridden via WithSelfEntries.
const DefaultSelfDist float64 = 0

// Options is the resolved configuration of a projection.
type Options struct {
	incoming    bool    // fold predecessors into the neighborhood and mirror entries
	includeSelf bool    // emit an explicit {u: {u: selfDist}} entry per node
	selfDist    float64 // diagonal / self-entry distance
}

// Option mutates projection options; setters apply last-writer-wins.
type Option func(*Options)

// WithIncoming extends each node's iteration domain with its predecessors
// and mirrors every improved entry to the transposed cell. This is how
// undirected mutual reachability is preserved in the symmetric view.
func WithIncoming() Option {
	return func(o *Options) { o.incoming = true }
}

// WithSelfEntries emits result[u][u] = dist for every node u.
func WithSelfEntries(dist float64) Option {
	return func(o *Options) {
		o.includeSelf = true
		o.selfDist = dist
	}
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{selfDist: DefaultSelfDist}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
