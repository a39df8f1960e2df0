// Package pagerank: configuration options and sentinel errors.
package pagerank

import (
	"context"
	"errors"
	"fmt"

	"github.com/velkarn/plexus/core"
)

// Sentinel errors for PageRank execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pagerank: graph is nil")

	// ErrEmptyGraph is returned when the graph holds no nodes.
	ErrEmptyGraph = errors.New("pagerank: graph has no nodes")

	// ErrZeroOutDegree is returned when a pull source divides by a zero
	// out-degree. The pull lists are built from real edges, so this is an
	// internal invariant violation rather than an input error.
	ErrZeroOutDegree = errors.New("pagerank: zero out-degree in pull set")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pagerank: invalid option supplied")
)

// Documented defaults (single source of truth).
const (
	// DefaultAlpha is the teleport probability.
	DefaultAlpha = 0.15

	// DefaultIterations is the hard cap on power iterations.
	DefaultIterations = 1000

	// DefaultConvergence is the L1-delta threshold that stops iteration.
	DefaultConvergence = 1e-4
)

// InitFunc yields the uniform initial rank for every node.
type InitFunc func(g *core.Graph) float64

// DampFunc yields the denominator of the teleport term α/αDamp.
type DampFunc func(g *core.Graph) float64

// Options holds the resolved PageRank configuration.
type Options struct {
	Ctx         context.Context
	Alpha       float64
	Iterations  int
	Convergence float64
	Init        InitFunc
	AlphaDamp   DampFunc
	Weighted    bool // recorded; ignored by the kernel (see package doc)

	err error // recorded during option parsing, surfaced by Compute
}

// Option configures PageRank via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with background context, α=0.15, 1000
// iterations, 1e-4 convergence, 1/n initial rank, and n teleport damping.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Alpha:       DefaultAlpha,
		Iterations:  DefaultIterations,
		Convergence: DefaultConvergence,
		Init:        func(g *core.Graph) float64 { return 1 / float64(g.NrNodes()) },
		AlphaDamp:   func(g *core.Graph) float64 { return float64(g.NrNodes()) },
	}
}

// WithContext sets a custom context, checked once per outer iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlpha sets the teleport probability; must sit in (0, 1).
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if alpha <= 0 || alpha >= 1 {
			o.err = fmt.Errorf("%w: alpha %g outside (0,1)", ErrOptionViolation, alpha)
			return
		}
		o.Alpha = alpha
	}
}

// WithIterations caps the number of power iterations; must be positive.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: iterations %d must be positive", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithConvergence sets the L1-delta stop threshold; must be positive.
func WithConvergence(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: convergence %g must be positive", ErrOptionViolation, eps)
			return
		}
		o.Convergence = eps
	}
}

// WithInit overrides the initial-rank function.
func WithInit(fn InitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Init = fn
		}
	}
}

// WithAlphaDamp overrides the teleport-denominator function.
func WithAlphaDamp(fn DampFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.AlphaDamp = fn
		}
	}
}

// WithWeighted records the weighted flag. The kernel ignores edge weights;
// see the package documentation for why the flag still exists.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}
