// Package tsp - Held–Karp dynamic programming engine.
//
// State: (mask, j) = minimum cost of a path that leaves start, visits exactly
// the vertices in mask (start ∈ mask) and ends at j ≠ start.
//
//	base:    C({s,i}, i)     = d(s,i)                       for d(s,i) ≠ NoEdge
//	step:    C(S, e)         = min_{p ∈ S\{s,e}} C(S\{e}, p) + d(p,e)
//	closing: OPT             = min_{k ≠ s} C(V, k) + d(k,s)
//
// Masks are processed strictly by population count: a state of size k reads
// only states of size k−1, so each stage sees a fully resolved predecessor
// stage. Ordering masks by integer value alone would not give that guarantee.
//
// Ties are broken by strict '<' over ascending vertex indices: the lowest
// predecessor (and the lowest closing vertex) that reaches the minimum wins.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
package tsp

// rawTour is what the engine hands to the translator: a cost that may be
// Unreachable, a tour that may be nil, and an optional internal diagnostic
// explaining why a tour was dropped after the table said it existed.
type rawTour struct {
	cost int64
	tour []int
	diag error
}

// heldKarp runs the engine on an already validated instance.
//
// Special cases:
//   - n == 0 → (0, nil). Unreachable through Solve, kept for direct callers.
//   - n == 1 → (0, [start, start]) without touching the table.
//
// Infeasible instances yield (Unreachable, nil). A table that claims a tour
// but cannot be walked back yields (Unreachable, nil, diag).
func heldKarp(dist Matrix, start int) rawTour {
	var n = len(dist)
	switch n {
	case 0:
		return rawTour{cost: 0}
	case 1:
		return rawTour{cost: 0, tour: []int{start, start}}
	}

	var t = buildTable(dist, start)

	var last, cost = closeTour(dist, t)
	if last < 0 {
		return rawTour{cost: Unreachable}
	}

	tour, err := reconstruct(t, last)
	if err != nil {
		return rawTour{cost: Unreachable, diag: err}
	}

	return rawTour{cost: cost, tour: tour}
}

// buildTable is the pure construction step: allocate, seed, expand.
func buildTable(dist Matrix, start int) *table {
	var t = newTable(len(dist), start)
	seedBase(dist, t)
	expand(dist, t)

	return t
}

// seedBase records C({s,i}, i) = d(s,i) for every finite edge s→i.
// Missing edges leave their state absent.
//
// Complexity: O(n).
func seedBase(dist Matrix, t *table) {
	var (
		s = t.start
		i int
		w int32
	)
	for i = 0; i < t.n; i++ {
		if i == s {
			continue
		}
		w = dist[s][i]
		if w == NoEdge {
			continue
		}
		t.put(t.baseMask(i), i, int64(w), s)
	}
}

// expand fills every state of size 3..n in increasing popcount order.
// Only masks containing the start bit are visited; states without a finite
// candidate stay absent.
//
// Complexity: O(n²·2ⁿ).
func expand(dist Matrix, t *table) {
	var (
		size int
		mask uint
		sb   = t.startBit()
	)
	for size = 3; size <= t.n; size++ {
		for mask = firstMask(size); mask <= t.full; mask = nextMask(mask) {
			if mask&sb == 0 {
				continue
			}
			relaxMask(dist, t, mask)
		}
	}
}

// relaxMask computes C(mask, e) for every end vertex e ∈ mask, e ≠ start.
func relaxMask(dist Matrix, t *table, mask uint) {
	var (
		e, p     int
		prevMask uint
		best     int64
		bestPred int
		c        int64
		ok       bool
		w        int32
		cand     int64
	)
	for e = 0; e < t.n; e++ {
		if e == t.start || mask&(1<<uint(e)) == 0 {
			continue
		}
		prevMask = mask ^ 1<<uint(e)
		best = Unreachable
		bestPred = -1

		for p = 0; p < t.n; p++ {
			if p == t.start || prevMask&(1<<uint(p)) == 0 {
				continue
			}
			c, _, ok = t.get(prevMask, p)
			if !ok {
				continue
			}
			w = dist[p][e]
			if w == NoEdge {
				continue
			}
			cand = c + int64(w)
			if cand < best {
				best = cand
				bestPred = p
			}
		}

		if bestPred >= 0 {
			t.put(mask, e, best, bestPred)
		}
	}
}

// closeTour picks the last vertex before returning to start.
// It returns (-1, Unreachable) when no full-mask state has a finite edge home.
//
// Complexity: O(n).
func closeTour(dist Matrix, t *table) (int, int64) {
	var (
		k     int
		c     int64
		ok    bool
		w     int32
		total int64
		best  = Unreachable
		last  = -1
	)
	for k = 0; k < t.n; k++ {
		if k == t.start {
			continue
		}
		c, _, ok = t.get(t.full, k)
		if !ok {
			continue
		}
		w = dist[k][t.start]
		if w == NoEdge {
			continue
		}
		total = c + int64(w)
		if total < best {
			best = total
			last = k
		}
	}

	return last, best
}

// firstMask returns the smallest mask with exactly k bits set.
func firstMask(k int) uint { return (1 << uint(k)) - 1 }

// nextMask returns the next larger mask with the same popcount (Gosper's hack).
func nextMask(mask uint) uint {
	var (
		c = mask & -mask
		r = mask + c
	)
	if c == 0 {
		// Zero mask has no successor; jump past any full mask.
		return ^uint(0)
	}

	return (((r ^ mask) >> 2) / c) | r
}
