// Package tsp - tour utilities.
//
// Helpers that operate on tour structure only (index sequences), without
// reading a cost matrix:
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given vertex.
//   - EqualToursModuloRotation: equality under rotation (same direction).
//   - CopyTour: independent copy of a tour slice.
//   - FormatTour: "0 -> 1 -> 2 -> 0" rendering used by the CLI.
//
// No logging and no panics on user input; failures are sentinel errors from types.go.
package tsp

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// tourSep joins vertices in FormatTour.
const tourSep = " -> "

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v ∈ [0, n) appears exactly once in positions [0, n).
//
// For n == 1 the only valid tour is [start, start].
//
// Complexity: O(n) time, O(n/64) words of space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return &StartOutOfRangeError{NumNodes: n, Start: start}
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	var (
		seen = bitset.New(uint(n))
		i    int
		v    int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen.Test(uint(v)) {
			return ErrDimensionMismatch
		}
		seen.Set(uint(v))
	}

	return nil
}

// RotateTourToStart returns a fresh closed tour equal to tour up to rotation
// with out[0] == out[n] == start. tour may be closed (len n+1, first == last)
// or a raw cycle of n vertices.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}

	var n = len(tour)
	if n > 1 && tour[0] == tour[n-1] {
		n--
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// EqualToursModuloRotation reports whether two closed tours describe the
// same directed cycle. Reversed cycles are not equal: on an asymmetric
// matrix they have different costs.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var n = len(a) - 1
	if a[n] != a[0] || b[n] != b[0] {
		return false
	}

	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	var i int
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// FormatTour renders tour as vertex indices joined by " -> ".
// An empty tour renders as "".
func FormatTour(tour []int) string {
	var (
		sb strings.Builder
		i  int
	)
	for i = 0; i < len(tour); i++ {
		if i > 0 {
			sb.WriteString(tourSep)
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}

	return sb.String()
}
