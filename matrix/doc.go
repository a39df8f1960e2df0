// Package matrix projects a core.Graph into dense and sparse numeric
// representations, and provides the dense all-pairs shortest-path kernel.
//
// What
//
//   - AdjacencyList: nested map {u: {v: weight}} with min-parallel-edge
//     semantics, NaN→DefaultWeight substitution, optional self entries,
//     and an incoming mode that mirrors every entry into the symmetric view.
//   - AdjacencyMatrix: binary n×n matrix (1 iff a finite weight exists),
//     zero diagonal.
//   - WeightedAdjacencyMatrix: n×n matrix with the self-distance on the
//     diagonal and +Inf as the "no edge" sentinel.
//   - NextMatrix: n×n successor seed ([j] when reachable or i==j, nil
//     otherwise) for Floyd–Warshall path reconstruction.
//   - Dense: row-major flat float64 matrix shared by all dense consumers.
//   - FloydWarshall / FloydWarshallWithNext: in-place APSP with a fixed
//     k→i→j loop order.
//
// Ordering
//
//	Every projection indexes rows and columns by the graph's node
//	insertion order (core.Graph.Nodes). Index exposes the id↔index
//	side table so downstream numeric code can map indices back to ids.
//
// Errors
//
//	ErrNilGraph          - nil graph passed to a projection.
//	ErrInvalidDimensions - non-positive matrix dimensions.
//	ErrIndexOutOfBounds  - row or column index outside the matrix.
//	ErrNonSquare         - APSP requested on a non-square matrix.
//	ErrDimensionMismatch - next table shape does not match the matrix.
package matrix
