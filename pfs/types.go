// Package pfs: direction modes, visitor joinpoints, per-node state, and
// functional options for priority-first search.
package pfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/velkarn/plexus/core"
)

// Sentinel errors for PFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pfs: graph is nil")

	// ErrSourceNotFound is returned when the source node is absent.
	ErrSourceNotFound = errors.New("pfs: source node not found")

	// ErrGoalNotFound is returned when a configured goal node is absent.
	ErrGoalNotFound = errors.New("pfs: goal node not found")

	// ErrNegativeWeight is returned when a negative edge weight is detected.
	ErrNegativeWeight = errors.New("pfs: negative edge weight encountered")

	// ErrGraphMutated is returned when the graph's structural version moves
	// while the search is running.
	ErrGraphMutated = errors.New("pfs: graph mutated during run")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pfs: invalid option supplied")
)

// DirMode selects which neighborhood of the current node PFS follows.
type DirMode int

const (
	// DirOut follows outgoing directed edges (NextNodes).
	DirOut DirMode = iota

	// DirIn follows incoming directed edges (PrevNodes).
	DirIn

	// DirUnd follows undirected edges (ConnNodes).
	DirUnd

	// DirMixed follows the reach set: outgoing ∪ undirected (ReachNodes).
	DirMixed
)

// Scope is the shared context handed to every visitor joinpoint.
// Fields beyond Root/Current are meaningful only during relaxation.
type Scope struct {
	Root    *core.Node    // the search source
	Current *core.Node    // the node being expanded
	Next    core.Neighbor // the candidate neighbor entry under relaxation

	AdjDist      float64 // candidate's best distance before this relaxation
	ProposedDist float64 // distance offered through Current
	BestNewDist  float64 // min(AdjDist, ProposedDist)
}

// Visitor receives the six PFS lifecycle joinpoints. Embed BaseVisitor to
// get no-op defaults and override selectively.
type Visitor interface {
	// InitPFS fires once, after state initialization, before the main loop.
	InitPFS(s *Scope)

	// NotEncountered fires when a candidate is seen for the first time.
	NotEncountered(s *Scope)

	// NodeOpen fires when a candidate's distance was set or strictly improved.
	NodeOpen(s *Scope)

	// NodeClosed fires on an exact tie (no improvement recorded).
	NodeClosed(s *Scope)

	// BetterPath fires when an already-known candidate strictly improved.
	BetterPath(s *Scope)

	// GoalReached fires when the configured goal node is popped.
	GoalReached(s *Scope)
}

// BaseVisitor implements Visitor with no-ops.
type BaseVisitor struct{}

func (BaseVisitor) InitPFS(*Scope)        {}
func (BaseVisitor) NotEncountered(*Scope) {}
func (BaseVisitor) NodeOpen(*Scope)       {}
func (BaseVisitor) NodeClosed(*Scope)     {}
func (BaseVisitor) BetterPath(*Scope)     {}
func (BaseVisitor) GoalReached(*Scope)    {}

// Entry is the per-candidate search state.
// Before first encounter: {+Inf, nil, -1}; the source holds {0, source, 0}.
type Entry struct {
	Distance float64
	Parent   *core.Node
	Counter  int
}

// Result maps candidate identifiers (node IDs under the default EvalObjID)
// to their final search state. Unreached nodes keep {+Inf, nil, -1}.
type Result map[string]*Entry

// PriorityFunc computes the heap priority of a relaxed candidate.
// The default returns Scope.ProposedDist (Dijkstra ordering).
type PriorityFunc func(s *Scope) float64

// ObjIDFunc names the candidate a neighbor entry stands for.
// The default returns the target node's ID.
type ObjIDFunc func(s *Scope) string

// Options holds the resolved PFS configuration.
type Options struct {
	Ctx          context.Context
	Dir          DirMode
	Goal         string // empty means "no goal"
	EvalPriority PriorityFunc
	EvalObjID    ObjIDFunc
	Visitors     []Visitor

	err error // recorded during option parsing, surfaced by PFS
}

// Option configures PFS behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with background context, DirOut mode, no
// goal, Dijkstra priority, node-ID candidate identity, and no visitors.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Dir:          DirOut,
		EvalPriority: func(s *Scope) float64 { return s.ProposedDist },
		EvalObjID:    func(s *Scope) string { return s.Next.Node.ID() },
	}
}

// WithContext sets a custom context for cancellation, checked once per
// main-loop iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirMode selects the neighborhood to follow.
func WithDirMode(dir DirMode) Option {
	return func(o *Options) {
		if dir < DirOut || dir > DirMixed {
			o.err = fmt.Errorf("%w: unknown DirMode %d", ErrOptionViolation, dir)
			return
		}
		o.Dir = dir
	}
}

// WithGoal enables early termination when the given node is popped.
func WithGoal(id string) Option {
	return func(o *Options) { o.Goal = id }
}

// WithEvalPriority overrides the heap priority function.
func WithEvalPriority(fn PriorityFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.EvalPriority = fn
		}
	}
}

// WithEvalObjID overrides the candidate identity function.
func WithEvalObjID(fn ObjIDFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.EvalObjID = fn
		}
	}
}

// WithVisitor appends a visitor; visitors fire in registration order.
func WithVisitor(v Visitor) Option {
	return func(o *Options) {
		if v != nil {
			o.Visitors = append(o.Visitors, v)
		}
	}
}
