// Package tsp - dense DP arena for Held–Karp.
//
// The table maps (mask, node) to (min cost, predecessor) in two flat slices
// indexed mask*n+node. A cost of Unreachable means the state is absent;
// there is no separate membership structure.
package tsp

// noPred marks a state without an explicit predecessor.
const noPred int8 = -1

// table is the scratch state of one solve. It is created, filled and
// dropped inside a single call and never shared.
type table struct {
	n     int
	start int
	full  uint // mask with all n bits set

	cost []int64 // cost[mask*n+node]; Unreachable = absent
	pred []int8  // pred[mask*n+node]; start for base states
}

// newTable allocates an empty arena for n nodes (2 ≤ n ≤ MaxNodes).
//
// Complexity: O(2^n·n) time and space.
func newTable(n, start int) *table {
	var (
		size = (1 << uint(n)) * n
		t    = &table{
			n:     n,
			start: start,
			full:  (1 << uint(n)) - 1,
			cost:  make([]int64, size),
			pred:  make([]int8, size),
		}
		i int
	)
	for i = 0; i < size; i++ {
		t.cost[i] = Unreachable
		t.pred[i] = noPred
	}

	return t
}

func (t *table) idx(mask uint, node int) int { return int(mask)*t.n + node }

// get returns the state for (mask, node) and whether it is present.
func (t *table) get(mask uint, node int) (int64, int, bool) {
	var i = t.idx(mask, node)
	if t.cost[i] == Unreachable {
		return Unreachable, int(noPred), false
	}

	return t.cost[i], int(t.pred[i]), true
}

func (t *table) put(mask uint, node int, cost int64, pred int) {
	var i = t.idx(mask, node)
	t.cost[i] = cost
	t.pred[i] = int8(pred)
}

// startBit is the mask bit of the start vertex.
func (t *table) startBit() uint { return 1 << uint(t.start) }

// baseMask is the two-node mask {start, node}.
func (t *table) baseMask(node int) uint { return t.startBit() | 1<<uint(node) }
