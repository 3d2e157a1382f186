// Package tsp - tour reconstruction from Held–Karp back-pointers.
package tsp

// reconstruct walks predecessors from (full, last) back to the start vertex
// and returns the closed tour [start, …, last, start].
//
// The walk stops when the stored predecessor is the start vertex, or when a
// base state {start, node} carries no explicit predecessor. Every other
// outcome is a broken table and is reported as *InternalError:
//   - a (mask, node) key absent from the table,
//   - a predecessor that is not in the reduced mask,
//   - more than n−1 steps,
//   - reaching start with vertices still in the mask.
//
// Complexity: O(n) time, O(n) space.
func reconstruct(t *table, last int) ([]int, error) {
	var (
		mask    = t.full
		node    = last
		segment = make([]int, 0, t.n-1)
		p       int
		ok      bool
	)
	for node != t.start {
		if len(segment) >= t.n-1 {
			return nil, internalf("reconstruction exceeded %d steps", t.n-1)
		}
		if _, p, ok = t.get(mask, node); !ok {
			return nil, internalf("state (mask=%b, node=%d) missing during reconstruction", mask, node)
		}
		segment = append(segment, node)

		if p == int(noPred) {
			if mask == t.baseMask(node) {
				mask = t.startBit()
				break
			}
			return nil, internalf("state (mask=%b, node=%d) has no predecessor", mask, node)
		}

		mask ^= 1 << uint(node)
		if p != t.start && mask&(1<<uint(p)) == 0 {
			return nil, internalf("predecessor %d of node %d is outside mask %b", p, node, mask)
		}
		node = p
	}

	if mask != t.startBit() {
		return nil, internalf("reconstruction ended with unvisited mask %b", mask)
	}

	// segment holds last…first; emit start, first…last, start.
	var (
		tour = make([]int, 0, t.n+1)
		i    int
	)
	tour = append(tour, t.start)
	for i = len(segment) - 1; i >= 0; i-- {
		tour = append(tour, segment[i])
	}
	tour = append(tour, t.start)

	return tour, nil
}
