package pfs_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkarn/plexus/core"
	"github.com/velkarn/plexus/pfs"
)

// buildDiamond wires the literal Dijkstra scenario:
// A→B(1), A→C(4), B→C(2), B→D(6), C→D(3).
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
	edges := []struct {
		a, b string
		w    float64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2}, {"B", "D", 6}, {"C", "D", 3},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.a+"_"+e.b+"_d", e.a, e.b,
			core.WithEdgeDirected(true), core.WithEdgeWeight(e.w))
		require.NoError(t, err)
	}

	return g
}

func TestPFS_Errors(t *testing.T) {
	_, err := pfs.PFS(nil, "A")
	assert.ErrorIs(t, err, pfs.ErrGraphNil)

	g := core.NewGraph()
	g.AddNode("A")
	_, err = pfs.PFS(g, "missing")
	assert.ErrorIs(t, err, pfs.ErrSourceNotFound)

	_, err = pfs.PFS(g, "A", pfs.WithGoal("missing"))
	assert.ErrorIs(t, err, pfs.ErrGoalNotFound)

	_, err = pfs.PFS(g, "A", pfs.WithDirMode(pfs.DirMode(42)))
	assert.ErrorIs(t, err, pfs.ErrOptionViolation)

	g.AddNode("B")
	g.AddEdge("neg", "A", "B", core.WithEdgeDirected(true), core.WithEdgeWeight(-2))
	_, err = pfs.PFS(g, "A")
	assert.ErrorIs(t, err, pfs.ErrNegativeWeight)
}

// TestDijkstra_Diamond is the literal scenario S-check: distances
// {A:0,B:1,C:3,D:6}, parents {A:A,B:A,C:B,D:C}.
func TestDijkstra_Diamond(t *testing.T) {
	g := buildDiamond(t)
	res, err := pfs.Dijkstra(g, "A")
	require.NoError(t, err)

	wantDist := map[string]float64{"A": 0, "B": 1, "C": 3, "D": 6}
	wantParent := map[string]string{"A": "A", "B": "A", "C": "B", "D": "C"}
	for id, d := range wantDist {
		require.Contains(t, res, id)
		assert.Equal(t, d, res[id].Distance, "distance of %s", id)
		assert.Equal(t, wantParent[id], res[id].Parent.ID(), "parent of %s", id)
	}
}

func TestPFS_UnreachableKeepsInfinity(t *testing.T) {
	g := buildDiamond(t)
	g.AddNode("Z") // isolated

	res, err := pfs.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.True(t, math.IsInf(res["Z"].Distance, 1))
	assert.Nil(t, res["Z"].Parent)
	assert.Equal(t, -1, res["Z"].Counter)
}

func TestPFS_UnweightedCountsEdges(t *testing.T) {
	// A—B—C undirected chain, no weights: distances are hop counts.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(id)
	}
	g.AddEdge("a_b", "A", "B")
	g.AddEdge("b_c", "B", "C")

	res, err := pfs.PFS(g, "A", pfs.WithDirMode(pfs.DirUnd))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res["A"].Distance)
	assert.Equal(t, 1.0, res["B"].Distance)
	assert.Equal(t, 2.0, res["C"].Distance)
}

func TestPFS_DirModes(t *testing.T) {
	// A→B directed, B—C undirected.
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(id)
	}
	g.AddEdge("a_b", "A", "B", core.WithEdgeDirected(true))
	g.AddEdge("b_c", "B", "C")

	// DirOut from A reaches B but not C (the undirected hop needs DirMixed).
	res, err := pfs.PFS(g, "A", pfs.WithDirMode(pfs.DirOut))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res["B"].Distance)
	assert.True(t, math.IsInf(res["C"].Distance, 1))

	// DirMixed follows the reach set and arrives at C.
	res, err = pfs.PFS(g, "A", pfs.WithDirMode(pfs.DirMixed))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res["C"].Distance)

	// DirIn walks edges backwards: from B we reach A.
	res, err = pfs.PFS(g, "B", pfs.WithDirMode(pfs.DirIn))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res["A"].Distance)
}

// eventVisitor records joinpoint firings for ordering assertions.
type eventVisitor struct {
	pfs.BaseVisitor
	events []string
}

func (v *eventVisitor) InitPFS(*pfs.Scope) { v.events = append(v.events, "init") }
func (v *eventVisitor) NotEncountered(s *pfs.Scope) {
	v.events = append(v.events, "new:"+s.Next.Node.ID())
}
func (v *eventVisitor) NodeOpen(s *pfs.Scope) {
	v.events = append(v.events, "open:"+s.Next.Node.ID())
}
func (v *eventVisitor) BetterPath(s *pfs.Scope) {
	v.events = append(v.events, "better:"+s.Next.Node.ID())
}
func (v *eventVisitor) GoalReached(s *pfs.Scope) {
	v.events = append(v.events, "goal:"+s.Current.ID())
}

func TestPFS_VisitorJoinpoints(t *testing.T) {
	g := buildDiamond(t)
	v := &eventVisitor{}

	_, err := pfs.PFS(g, "A", pfs.WithVisitor(v), pfs.WithGoal("D"))
	require.NoError(t, err)

	require.NotEmpty(t, v.events)
	assert.Equal(t, "init", v.events[0], "InitPFS fires first")
	assert.Contains(t, v.events, "new:B")
	assert.Contains(t, v.events, "better:C", "A→C(4) is later undercut via B (3)")
	assert.Equal(t, "goal:D", v.events[len(v.events)-1], "goal fires last")
}

func TestPFS_GoalStopsEarly(t *testing.T) {
	g := buildDiamond(t)
	res, err := pfs.PFS(g, "A", pfs.WithGoal("B"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res["B"].Distance)
	// D sits behind the goal: B is never expanded, so D is never offered a distance.
	assert.True(t, math.IsInf(res["D"].Distance, 1))
}

func TestPFS_CounterTracksDiscoveryOrder(t *testing.T) {
	g := buildDiamond(t)
	res, err := pfs.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, 0, res["A"].Counter)
	// B and C are discovered while expanding A, in neighbor order.
	assert.Equal(t, 1, res["B"].Counter)
	assert.Equal(t, 2, res["C"].Counter)
	assert.Equal(t, 3, res["D"].Counter)
}

func TestPFS_Cancellation(t *testing.T) {
	g := buildDiamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pfs.PFS(g, "A", pfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// mutatingVisitor adds a node mid-run, tripping the version guard.
type mutatingVisitor struct {
	pfs.BaseVisitor
	g *core.Graph
}

func (v *mutatingVisitor) NodeOpen(*pfs.Scope) {
	v.g.AddNode("intruder")
}

func TestPFS_MutationGuard(t *testing.T) {
	g := buildDiamond(t)
	_, err := pfs.PFS(g, "A", pfs.WithVisitor(&mutatingVisitor{g: g}))
	assert.ErrorIs(t, err, pfs.ErrGraphMutated)
}

func TestPFS_CustomPriorityAndObjID(t *testing.T) {
	g := buildDiamond(t)

	// A uniform priority degrades PFS to plain best-effort expansion but
	// must still converge to correct distances.
	res, err := pfs.PFS(g, "A",
		pfs.WithEvalPriority(func(*pfs.Scope) float64 { return 1 }))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res["D"].Distance)

	// Custom identities bucket candidates under caller-chosen keys.
	res, err = pfs.PFS(g, "A",
		pfs.WithEvalObjID(func(s *pfs.Scope) string { return "n:" + s.Next.Node.ID() }))
	require.NoError(t, err)
	require.Contains(t, res, "n:D")
	assert.Equal(t, 6.0, res["n:D"].Distance)
}
