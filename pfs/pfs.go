// Package pfs: the priority-first search main loop.
//
// The implementation follows the classic lazy-decrease-key scheme: instead
// of reprioritizing heap entries in place, improvements push a fresh entry
// and stale ones are neutralized by the relaxation rules (a stale pop can
// only produce ties or worse proposals, never a wrong update).
package pfs

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/velkarn/plexus/core"
)

// PFS runs priority-first search on g starting from sourceID, applying any
// number of functional Options. See the package documentation for the
// relaxation contract and the visitor joinpoints.
//
// Returns the Result map and the first error encountered: ErrGraphNil,
// ErrSourceNotFound, ErrGoalNotFound, ErrOptionViolation,
// ErrNegativeWeight, ErrGraphMutated, or a context error.
// Complexity: O((V + E) log V).
func PFS(g *core.Graph, sourceID string, opts ...Option) (Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	source, err := g.Node(sourceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, sourceID)
	}
	if o.Goal != "" && !g.HasNode(o.Goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, o.Goal)
	}
	// Fail fast on negative weights: the heap's monotonicity assumption
	// does not survive them.
	for _, e := range g.Edges() {
		if e.Weighted() && e.Weight() < 0 {
			return nil, fmt.Errorf("%w: edge %s weight=%g",
				ErrNegativeWeight, e.ID(), e.Weight())
		}
	}

	r := &runner{
		graph:   g,
		opts:    o,
		source:  source,
		version: g.Version(),
		result:  make(Result, g.NrNodes()),
	}
	r.init()

	return r.result, r.process()
}

// runner holds the mutable state of a single PFS execution.
type runner struct {
	graph   *core.Graph
	opts    Options
	source  *core.Node
	version uint64 // structural version snapshot (mutation guard)
	result  Result
	pq      nodePQ
	count   int // discovery counter
	scope   Scope
}

// init seeds per-node state, pushes the source, and fires InitPFS.
func (r *runner) init() {
	for _, n := range r.graph.Nodes() {
		r.result[n.ID()] = &Entry{Distance: math.Inf(1), Counter: -1}
	}
	// The source is its own parent at distance zero, discovery index zero.
	r.result[r.source.ID()] = &Entry{Distance: 0, Parent: r.source, Counter: r.count}
	r.count++

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{node: r.source, objID: r.source.ID(), priority: 0})

	r.scope = Scope{Root: r.source, Current: r.source}
	r.fire(Visitor.InitPFS)
}

// process drains the heap, expanding the cheapest node each round.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// Cancellation check, once per loop.
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}
		// Mutation guard: callbacks must not alter graph structure.
		if r.graph.Version() != r.version {
			return ErrGraphMutated
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		current := item.node
		r.scope.Current = current

		if r.opts.Goal != "" && current.ID() == r.opts.Goal {
			r.fire(Visitor.GoalReached)
			return nil
		}

		r.relax(current, r.entry(item.objID).Distance)
	}

	return nil
}

// neighborhood returns the directional neighbor entries of n.
func (r *runner) neighborhood(n *core.Node) []core.Neighbor {
	switch r.opts.Dir {
	case DirIn:
		return n.PrevNodes()
	case DirUnd:
		return n.ConnNodes()
	case DirMixed:
		return n.ReachNodes()
	default:
		return n.NextNodes()
	}
}

// relax offers the current candidate's distance to each neighbor and
// dispatches the joinpoints mandated by the outcome.
func (r *runner) relax(current *core.Node, base float64) {
	var proposed, adj float64
	for _, ne := range r.neighborhood(current) {
		proposed = base + ne.Edge.WeightOrDefault()

		r.scope.Next = ne
		r.scope.ProposedDist = proposed
		objID := r.opts.EvalObjID(&r.scope)

		entry := r.entry(objID)
		adj = entry.Distance
		r.scope.AdjDist = adj
		r.scope.BestNewDist = math.Min(adj, proposed)

		switch {
		case math.IsInf(adj, 1):
			// First encounter: adopt the proposal outright.
			entry.Distance = proposed
			entry.Parent = current
			entry.Counter = r.count
			r.count++
			r.push(ne.Node, objID, &r.scope)
			r.fire(Visitor.NotEncountered)
			r.fire(Visitor.NodeOpen)

		case proposed < adj:
			// Strict improvement: re-route through current.
			entry.Distance = proposed
			entry.Parent = current
			r.push(ne.Node, objID, &r.scope)
			r.fire(Visitor.BetterPath)
			r.fire(Visitor.NodeOpen)

		case proposed == adj:
			// Tie: the earlier-discovered parent stays.
			r.fire(Visitor.NodeClosed)
		}
	}
}

// entry returns the state for a candidate identifier, creating the
// untouched {∞, nil, -1} entry for identifiers a custom EvalObjID mints.
func (r *runner) entry(objID string) *Entry {
	e, ok := r.result[objID]
	if !ok {
		e = &Entry{Distance: math.Inf(1), Counter: -1}
		r.result[objID] = e
	}

	return e
}

// push enqueues a candidate under the configured priority function.
func (r *runner) push(n *core.Node, objID string, s *Scope) {
	heap.Push(&r.pq, &nodeItem{node: n, objID: objID, priority: r.opts.EvalPriority(s)})
}

// fire dispatches one joinpoint across all visitors in registration order.
func (r *runner) fire(join func(Visitor, *Scope)) {
	for _, v := range r.opts.Visitors {
		join(v, &r.scope)
	}
}

// nodeItem pairs a node (and its candidate identity) with a heap priority.
type nodeItem struct {
	node     *core.Node
	objID    string
	priority float64
}

// nodePQ is a min-heap of *nodeItem ordered by priority ascending,
// operated through container/heap with lazy decrease-key.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
