package tsp

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

// square4 has two optimal tours of cost 80 from vertex 0.
var square4 = Matrix{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// popcount is the size of a visited set.
func popcount(mask uint) int { return bits.OnesCount(mask) }

func TestNextMask_GroupsByPopcount(t *testing.T) {
	const n = 6
	var full uint = 1<<n - 1

	var k int
	for k = 1; k <= n; k++ {
		var (
			prev  uint
			count int
			mask  uint
		)
		for mask = firstMask(k); mask <= full; mask = nextMask(mask) {
			require.Equal(t, k, popcount(mask))
			if count > 0 {
				require.Greater(t, mask, prev)
			}
			prev = mask
			count++
		}
		require.Equal(t, binomial(n, k), count, "k=%d", k)
	}
}

func binomial(n, k int) int {
	var (
		r = 1
		i int
	)
	for i = 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}

	return r
}

func TestSeedBase(t *testing.T) {
	dist := Matrix{
		{0, 7, NoEdge, 3},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}
	tb := newTable(len(dist), 0)
	seedBase(dist, tb)

	c, p, ok := tb.get(tb.baseMask(1), 1)
	require.True(t, ok)
	require.Equal(t, int64(7), c)
	require.Equal(t, 0, p)

	_, _, ok = tb.get(tb.baseMask(2), 2)
	require.False(t, ok, "missing start edge must leave the base state absent")

	c, _, ok = tb.get(tb.baseMask(3), 3)
	require.True(t, ok)
	require.Equal(t, int64(3), c)

	// Nothing else is seeded.
	var present int
	for _, v := range tb.cost {
		if v != Unreachable {
			present++
		}
	}
	require.Equal(t, 2, present)
}

func TestExpand_TableInvariants(t *testing.T) {
	var (
		start = 2
		tb    = buildTable(square4, start)
		sb    = tb.startBit()
		mask  uint
		node  int
	)
	for mask = 0; mask <= tb.full; mask++ {
		for node = 0; node < tb.n; node++ {
			c, p, ok := tb.get(mask, node)
			if !ok {
				continue
			}
			require.NotZero(t, mask&sb, "state without start bit: mask=%b", mask)
			require.NotZero(t, mask&(1<<uint(node)), "node outside its mask")
			require.NotEqual(t, start, node)

			if mask == tb.baseMask(node) {
				require.Equal(t, start, p)
				require.Equal(t, int64(square4[start][node]), c)
				continue
			}

			prev := mask ^ 1<<uint(node)
			pc, _, pok := tb.get(prev, p)
			require.True(t, pok, "predecessor state (%b,%d) missing", prev, p)
			require.Equal(t, pc+int64(square4[p][node]), c)
		}
	}

	// The full mask is reached from every non-start vertex on a complete graph.
	for node = 0; node < tb.n; node++ {
		if node == start {
			continue
		}
		_, _, ok := tb.get(tb.full, node)
		require.True(t, ok)
	}
}

func TestExpand_AbsentStatesStayAbsent(t *testing.T) {
	// Vertex 3 has no incoming edge from 1 or 2, and start→3 is missing,
	// so no state can end at 3.
	dist := Matrix{
		{0, 1, 1, NoEdge},
		{1, 0, 1, NoEdge},
		{1, 1, 0, NoEdge},
		{1, 1, 1, 0},
	}
	tb := buildTable(dist, 0)

	var mask uint
	for mask = 0; mask <= tb.full; mask++ {
		_, _, ok := tb.get(mask, 3)
		require.False(t, ok, "mask=%b", mask)
	}

	last, cost := closeTour(dist, tb)
	require.Equal(t, -1, last)
	require.Equal(t, Unreachable, cost)
}

func TestCloseTour_LowestIndexWinsTies(t *testing.T) {
	tb := buildTable(square4, 0)
	last, cost := closeTour(square4, tb)
	require.Equal(t, int64(80), cost)
	// Both 1 and 2 close an 80 tour; 1 is seen first.
	require.Equal(t, 1, last)
}

func TestReconstruct_Valid(t *testing.T) {
	tb := buildTable(square4, 0)
	last, _ := closeTour(square4, tb)

	tour, err := reconstruct(tb, last)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 1, 0}, tour)
}

func TestReconstruct_BaseStateWithoutPredecessor(t *testing.T) {
	tb := buildTable(square4, 0)
	last, _ := closeTour(square4, tb)

	// Base states may also be stored with no explicit predecessor.
	var node int
	for node = 1; node < tb.n; node++ {
		tb.pred[tb.idx(tb.baseMask(node), node)] = noPred
	}

	tour, err := reconstruct(tb, last)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 1, 0}, tour)
}

func TestReconstruct_CorruptedTable(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(tb *table, last int)
	}{
		{"missing predecessor state", func(tb *table, last int) {
			_, p, _ := tb.get(tb.full, last)
			tb.cost[tb.idx(tb.full^1<<uint(last), p)] = Unreachable
		}},
		{"predecessor outside mask", func(tb *table, last int) {
			tb.pred[tb.idx(tb.full, last)] = int8(last)
		}},
		{"no predecessor on non-base state", func(tb *table, last int) {
			tb.pred[tb.idx(tb.full, last)] = noPred
		}},
		{"missing terminal state", func(tb *table, last int) {
			tb.cost[tb.idx(tb.full, last)] = Unreachable
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tb := buildTable(square4, 0)
			last, _ := closeTour(square4, tb)
			tc.corrupt(tb, last)

			_, err := reconstruct(tb, last)
			require.Error(t, err)

			var ie *InternalError
			require.True(t, errors.As(err, &ie))
			require.ErrorIs(t, err, ErrNoPath)
			require.ErrorIs(t, err, ErrInternal)
		})
	}
}

func TestReconstruct_StepBound(t *testing.T) {
	// A predecessor cycle 1 → 2 → 1 inside the full mask would never reach
	// start; the mask check and step bound must stop it.
	tb := newTable(3, 0)
	tb.put(tb.full, 1, 10, 2)
	tb.put(tb.full^1<<1, 2, 5, 1)

	_, err := reconstruct(tb, 1)
	require.ErrorIs(t, err, ErrInternal)
}

func TestHeldKarp_SpecialSizes(t *testing.T) {
	raw := heldKarp(Matrix{}, 0)
	require.Equal(t, int64(0), raw.cost)
	require.Empty(t, raw.tour)

	raw = heldKarp(Matrix{{5}}, 0)
	require.Equal(t, int64(0), raw.cost)
	require.Equal(t, []int{0, 0}, raw.tour)
}

func TestTranslate_FailsClosed(t *testing.T) {
	dist := Matrix{
		{0, 10, 40},
		{12, 0, 15},
		{25, 18, 0},
	}

	t.Run("unreachable cost", func(t *testing.T) {
		_, err := translate(dist, 0, rawTour{cost: Unreachable, tour: []int{0, 1, 2, 0}})
		require.ErrorIs(t, err, ErrNoPath)
		require.NotErrorIs(t, err, ErrInternal)
	})

	t.Run("unreachable with diagnostic", func(t *testing.T) {
		diag := internalf("boom")
		_, err := translate(dist, 0, rawTour{cost: Unreachable, diag: diag})
		require.ErrorIs(t, err, ErrNoPath)
		require.ErrorIs(t, err, ErrInternal)
		require.Contains(t, err.Error(), "boom")
	})

	malformed := [][]int{
		nil,
		{0, 1, 0},
		{1, 2, 0, 1},
		{0, 1, 1, 0},
		{0, 1, 2, 3},
	}
	for _, tour := range malformed {
		_, err := translate(dist, 0, rawTour{cost: 50, tour: tour})
		require.ErrorIs(t, err, ErrNoPath, "tour %v", tour)
		require.ErrorIs(t, err, ErrInternal, "tour %v", tour)
	}

	_, err := translate(Matrix{{0}}, 0, rawTour{cost: 0, tour: []int{0}})
	require.ErrorIs(t, err, ErrNoPath)

	res, err := translate(dist, 0, rawTour{cost: 50, tour: []int{0, 1, 2, 0}})
	require.NoError(t, err)
	require.Equal(t, TSResult{Tour: []int{0, 1, 2, 0}, Cost: 50}, res)
}
