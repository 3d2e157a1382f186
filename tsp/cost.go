// Package tsp - tour cost evaluation.
//
// TourCost is independent of the DP table: it recomputes a cost straight
// from the matrix, which is how tests and the CLI cross-check Solve.
package tsp

// TourCost sums dist[tour[i]][tour[i+1]] over consecutive vertices.
//
// Contract:
//   - dist is square and tour has at least two entries, all in [0, n);
//     otherwise ErrDimensionMismatch (or *NonSquareError for the shape).
//   - Any traversed edge equal to NoEdge yields ErrNoPath.
//
// Complexity: O(len(tour)).
func TourCost(dist Matrix, tour []int) (int64, error) {
	var n = len(dist)
	if n == 0 || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var i int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, &NonSquareError{Rows: n, Cols: len(dist[i])}
		}
	}

	var (
		sum  int64
		u, v int
		w    int32
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if u == v {
			// [s, s] is the single-node tour; self-costs never count.
			continue
		}
		w = dist[u][v]
		if w == NoEdge {
			return 0, ErrNoPath
		}
		sum += int64(w)
	}

	return sum, nil
}
