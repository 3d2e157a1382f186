// Package tsp_test provides lightweight helpers shared across *_test.go files:
// deterministic random instances, a brute-force reference solver and tour
// assertions.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/tsp"
)

const (
	// inf is the absent-edge sentinel, spelled short for table literals.
	inf = tsp.NoEdge

	// seedDet is the base seed for every randomized test.
	seedDet = int64(20240611)

	// bruteMaxN bounds brute-force cross-checks ((n−1)! permutations).
	bruteMaxN = 8
)

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// randomMatrix builds an n×n asymmetric instance with weights in [1, maxW]
// and each off-diagonal edge missing with probability missing.
func randomMatrix(rng *rand.Rand, n int, maxW int32, missing float64) tsp.Matrix {
	var (
		dist = make(tsp.Matrix, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]int32, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < missing {
				dist[i][j] = inf
				continue
			}
			dist[i][j] = 1 + rng.Int31n(maxW)
		}
	}

	return dist
}

// bruteForce enumerates every cycle through start and returns the minimum
// cost, or (tsp.Unreachable, false) when none exists.
func bruteForce(dist tsp.Matrix, start int) (int64, bool) {
	var n = len(dist)
	if n == 1 {
		return 0, true
	}

	var (
		rest = make([]int, 0, n-1)
		used = make([]bool, n)
		best = tsp.Unreachable
		v    int
	)
	for v = 0; v < n; v++ {
		if v != start {
			rest = append(rest, v)
		}
	}

	var walk func(last int, depth int, cost int64)
	walk = func(last int, depth int, cost int64) {
		if depth == len(rest) {
			if w := dist[last][start]; w != inf && cost+int64(w) < best {
				best = cost + int64(w)
			}
			return
		}
		var k int
		for k = 0; k < len(rest); k++ {
			if used[k] {
				continue
			}
			w := dist[last][rest[k]]
			if w == inf {
				continue
			}
			used[k] = true
			walk(rest[k], depth+1, cost+int64(w))
			used[k] = false
		}
	}
	walk(start, 0, 0)

	return best, best != tsp.Unreachable
}

// requireValidResult asserts the closed-tour invariants and that the
// reported cost matches a fresh sum along the tour.
func requireValidResult(t *testing.T, dist tsp.Matrix, start int, res tsp.TSResult) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, len(dist), start))
	cost, err := tsp.TourCost(dist, res.Tour)
	require.NoError(t, err)
	require.Equal(t, res.Cost, cost, "tour %v", res.Tour)
}
