// Package tsp provides an exact Travelling Salesman solver for small,
// possibly asymmetric, directed instances given as a dense cost matrix.
//
// Solve uses the Held–Karp dynamic-programming algorithm:
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ), a flat arena indexed mask*n+node
//
//   - Limit:      n ≤ MaxNodes
//
// The matrix is a [][]int32 (see Matrix):
//   - dist[u][v] is the cost of the directed edge u→v.
//   - The value NoEdge signals "no direct edge".
//   - Diagonal entries are ignored.
//
// Result and failure policy:
//   - The tour starts and ends at the requested start vertex; for n == 1 it
//     is [start, start] with cost 0.
//   - Among equal-cost tours the lowest vertex indices win, so results are
//     reproducible bit for bit.
//   - Malformed input fails before any DP work: ErrEmptyGraph,
//     *NonSquareError, *StartOutOfRangeError, ErrTooManyNodes.
//   - If no Hamiltonian cycle through start exists, Solve returns ErrNoPath.
//
// Use this package when an optimal tour is required and n is small
// (n≲20 runs in well under a second on commodity hardware).
package tsp
