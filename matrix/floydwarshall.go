// Package matrix: canonical dense APSP (Floyd–Warshall) kernel with a
// deterministic loop order.
//
// Contract: square matrix; +Inf means "no path" off-diagonal; the diagonal
// must hold the self distance (normally 0) before calling.
package matrix

import (
	"math"
)

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Loop order is fixed (k → i → j), ensuring stable accumulation order.
// Only strict improvements relax, so ties keep the earlier path.
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d.r != d.c {
		return ErrNonSquare
	}
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k; no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// FloydWarshallWithNext runs APSP on d while maintaining a successor table
// seeded by NextMatrix: whenever the path i→j improves via k, next[i][j]
// adopts next[i][k]. After completion, following next hops from i
// reconstructs a shortest path to j.
// Complexity: Time O(n³), extra space O(n²) for the copied hop lists.
func FloydWarshallWithNext(d *Dense, next [][][]int) error {
	if d.r != d.c {
		return ErrNonSquare
	}
	n := d.r
	if len(next) != n {
		return ErrDimensionMismatch
	}
	for i := range next {
		if len(next[i]) != n {
			return ErrDimensionMismatch
		}
	}
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					next[i][j] = append([]int(nil), next[i][k]...)
				}
			}
		}
	}

	return nil
}
