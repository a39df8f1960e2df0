package pfs_test

import (
	"fmt"

	"github.com/velkarn/plexus/core"
	"github.com/velkarn/plexus/pfs"
)

// ExampleDijkstra demonstrates single-source shortest paths on a small
// directed weighted graph.
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		g.AddNode(id)
	}
	g.AddEdge("A_B", "A", "B", core.WithEdgeDirected(true), core.WithEdgeWeight(1))
	g.AddEdge("A_C", "A", "C", core.WithEdgeDirected(true), core.WithEdgeWeight(4))
	g.AddEdge("B_C", "B", "C", core.WithEdgeDirected(true), core.WithEdgeWeight(2))
	g.AddEdge("C_D", "C", "D", core.WithEdgeDirected(true), core.WithEdgeWeight(3))

	res, err := pfs.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range g.NodeIDs() {
		fmt.Printf("%s: %.0f via %s\n", id, res[id].Distance, res[id].Parent.ID())
	}
	// Output:
	// A: 0 via A
	// B: 1 via A
	// C: 3 via B
	// D: 6 via C
}

// countingVisitor tallies how often candidates improve.
type countingVisitor struct {
	pfs.BaseVisitor
	improved int
}

func (v *countingVisitor) BetterPath(*pfs.Scope) { v.improved++ }

// ExamplePFS_visitor shows a custom joinpoint observer.
func ExamplePFS_visitor() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(id)
	}
	g.AddEdge("A_B", "A", "B", core.WithEdgeDirected(true), core.WithEdgeWeight(5))
	g.AddEdge("A_C", "A", "C", core.WithEdgeDirected(true), core.WithEdgeWeight(1))
	g.AddEdge("C_B", "C", "B", core.WithEdgeDirected(true), core.WithEdgeWeight(1))

	v := &countingVisitor{}
	if _, err := pfs.PFS(g, "A", pfs.WithVisitor(v)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("improvements:", v.improved)
	// Output:
	// improvements: 1
}
