// Package tsp - input validation that gates the DP engine.
//
// validateInput runs to completion before any table is allocated; the engine
// relies on a square matrix and an in-range start vertex and never re-checks.
//
// Error priority (enforced in tests):
// empty -> non-square -> start out of range -> too many nodes.
package tsp

// validateInput checks the structural preconditions of Solve and returns n.
//
// Contract:
//   - len(dist) > 0, otherwise ErrEmptyGraph.
//   - every row has len(dist) entries, otherwise *NonSquareError for the
//     first offending row.
//   - 0 ≤ start < n, otherwise *StartOutOfRangeError.
//   - n ≤ MaxNodes, otherwise ErrTooManyNodes.
//
// Complexity: O(n) time, O(1) space. Entries are not inspected.
func validateInput(dist Matrix, start int) (int, error) {
	var n = len(dist)
	if n == 0 {
		return 0, ErrEmptyGraph
	}

	var i int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, &NonSquareError{Rows: n, Cols: len(dist[i])}
		}
	}

	if start < 0 || start >= n {
		return 0, &StartOutOfRangeError{NumNodes: n, Start: start}
	}

	if n > MaxNodes {
		return 0, ErrTooManyNodes
	}

	return n, nil
}
