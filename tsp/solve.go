// Package tsp - public entry point and result translation.
//
// Solve is the only way callers reach the engine:
//
//	validateInput → heldKarp (build table, close, reconstruct) → translate
//
// Design principles:
//   - Fail fast: structural input errors never allocate a DP table.
//   - Fail closed: the translator re-checks the engine output on its own and
//     treats either an Unreachable cost or a malformed tour as ErrNoPath.
//   - Deterministic and pure: no retries, no shared state between calls.
package tsp

// Solve returns the minimum-cost Hamiltonian cycle through start on the
// directed cost matrix dist, together with its cost.
//
// Contracts:
//   - dist is square, 1 ≤ n ≤ MaxNodes; dist[u][v] == NoEdge forbids u→v.
//   - 0 ≤ start < n.
//   - On success len(Tour) == n+1 and Tour[0] == Tour[n] == start.
//
// Errors:
//   - ErrEmptyGraph, *NonSquareError, *StartOutOfRangeError, ErrTooManyNodes
//     from validation (no DP work is done).
//   - ErrTooManyNodes is a memory guard on top of the algorithm, which has no
//     size limit of its own; it is checked only after the other three.
//   - ErrNoPath when no cycle exists. If the table claimed a cycle that could
//     not be rebuilt, the error is *InternalError, which also matches
//     ErrNoPath and ErrInternal.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func Solve(dist Matrix, start int) (TSResult, error) {
	if _, err := validateInput(dist, start); err != nil {
		return TSResult{}, err
	}

	return translate(dist, start, heldKarp(dist, start))
}

// translate maps the engine's raw output to a result or a typed failure.
// It does not trust the engine: the tour shape is checked against dist and
// start independently of the table that produced it.
func translate(dist Matrix, start int, raw rawTour) (TSResult, error) {
	var n = len(dist)

	if raw.cost == Unreachable {
		if raw.diag != nil {
			return TSResult{}, raw.diag
		}

		return TSResult{}, ErrNoPath
	}

	if n == 1 {
		if len(raw.tour) != 2 || raw.tour[0] != start || raw.tour[1] != start {
			return TSResult{}, internalf("single-node tour is %v, want [%d %d]", raw.tour, start, start)
		}

		return TSResult{Tour: raw.tour, Cost: raw.cost}, nil
	}

	if err := ValidateTour(raw.tour, n, start); err != nil {
		return TSResult{}, internalf("engine returned malformed tour %v: %v", raw.tour, err)
	}

	return TSResult{Tour: raw.tour, Cost: raw.cost}, nil
}
