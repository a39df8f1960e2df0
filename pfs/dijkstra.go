// Package pfs: Dijkstra as a thin PFS instantiation.
package pfs

import (
	"github.com/velkarn/plexus/core"
)

// Dijkstra computes single-source shortest paths over outgoing directed
// edges. It is PFS with DirOut, the default Dijkstra priority, and no
// custom visitors; pass WithGoal for early termination and WithContext
// for cancellation.
//
// Unweighted edges count as core.DefaultWeight, so the call is meaningful
// on weighted, unweighted, and mixed graphs alike.
// Complexity: O((V + E) log V).
func Dijkstra(g *core.Graph, sourceID string, opts ...Option) (Result, error) {
	merged := make([]Option, 0, len(opts)+1)
	merged = append(merged, WithDirMode(DirOut))
	merged = append(merged, opts...)

	return PFS(g, sourceID, merged...)
}
