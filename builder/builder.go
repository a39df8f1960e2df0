// Package builder provides deterministic graph generators for tests,
// examples, and benchmarks: simple paths, cycles, and complete graphs.
//
// Generators emit vertices with the configured ID prefix in ascending
// index order and edges in a stable order, so two invocations with the
// same parameters build identical graphs, including insertion order.
package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/velkarn/plexus/core"
)

// ErrTooFewNodes is returned when n is below the topology's minimum.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// DefaultIDPrefix names generated nodes N0, N1, ….
const DefaultIDPrefix = "N"

// Options holds the resolved generator configuration.
type Options struct {
	IDPrefix string
	Directed bool
	Weight   float64 // applied when Weighted
	Weighted bool
}

// Option configures a generator via functional arguments.
type Option func(*Options)

// WithIDPrefix overrides the generated node ID prefix.
func WithIDPrefix(prefix string) Option {
	return func(o *Options) {
		if prefix != "" {
			o.IDPrefix = prefix
		}
	}
}

// WithDirected emits directed edges from the first to the second index of
// each wired pair: i → j for i < j, except Cycle's closing edge n-1 → 0.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithUniformWeight emits weighted edges carrying w.
func WithUniformWeight(w float64) Option {
	return func(o *Options) {
		o.Weighted = true
		o.Weight = w
	}
}

func gather(opts []Option) Options {
	o := Options{IDPrefix: DefaultIDPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) nodeID(i int) string {
	return o.IDPrefix + strconv.Itoa(i)
}

func (o Options) edgeOpts() []core.EdgeOption {
	out := []core.EdgeOption{core.WithEdgeDirected(o.Directed)}
	if o.Weighted {
		out = append(out, core.WithEdgeWeight(o.Weight))
	}

	return out
}

// connect wires i→j under the canonical "{a}_{b}_{d|u}" id scheme.
func (o Options) connect(g *core.Graph, i, j int) error {
	a, b := o.nodeID(i), o.nodeID(j)
	suffix := "u"
	if o.Directed {
		suffix = "d"
	}
	_, err := g.AddEdge(a+"_"+b+"_"+suffix, a, b, o.edgeOpts()...)

	return err
}

// addNodes emits n nodes in ascending index order.
func (o Options) addNodes(g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		if _, err := g.AddNode(o.nodeID(i)); err != nil {
			return fmt.Errorf("builder: node %d: %w", i, err)
		}
	}

	return nil
}

// Path builds the simple path P_n: edges (i, i+1) for i in [0, n-1).
// Requires n ≥ 2.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("builder: Path(%d): %w", n, ErrTooFewNodes)
	}
	o := gather(opts)
	g := core.NewGraph()
	if err := o.addNodes(g, n); err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err := o.connect(g, i, i+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the cycle C_n: a path closed by the edge (n-1, 0).
// Requires n ≥ 3.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("builder: Cycle(%d): %w", n, ErrTooFewNodes)
	}
	o := gather(opts)
	g := core.NewGraph()
	if err := o.addNodes(g, n); err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err := o.connect(g, i, i+1); err != nil {
			return nil, err
		}
	}
	if err := o.connect(g, n-1, 0); err != nil {
		return nil, err
	}

	return g, nil
}

// Complete builds K_n: every unordered pair (i, j), i < j, connected once.
// Requires n ≥ 2.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("builder: Complete(%d): %w", n, ErrTooFewNodes)
	}
	o := gather(opts)
	g := core.NewGraph()
	if err := o.addNodes(g, n); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := o.connect(g, i, j); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
