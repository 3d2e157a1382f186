// Package tsp - shared types, limits and the sentinel error set.
//
// All functions in this package return these sentinels (or typed errors that
// unwrap to them) and tests check them via errors.Is / errors.As.
// No function panics on user-supplied input.
package tsp

import (
	"errors"
	"fmt"
	"math"
)

// Matrix is a dense directed cost matrix: Matrix[u][v] is the cost of the
// edge u→v. It must be square; diagonal entries are never read by the solver.
type Matrix = [][]int32

// NoEdge marks an absent (forbidden) edge. It is the only reserved weight;
// every other int32 value is a real edge cost.
//
// Overflow bound: costs are accumulated in int64 and only finite edges are
// ever added, so a tour of at most MaxNodes+1 edges stays below
// (MaxNodes+1)·MaxInt32 < 2^37. Twice NoEdge plus the largest edge is < 2^32.
const NoEdge int32 = math.MaxInt32 / 2

// Unreachable is the cost reported for a state or tour that does not exist.
// By the bound above no real sum can reach it.
const Unreachable int64 = math.MaxInt64

// MaxNodes is the largest instance the dense DP arena accepts.
// The arena holds 2^n·n cells, so memory, not time, is the first wall.
const MaxNodes = 24

// TSResult holds the outcome of a successful solve.
type TSResult struct {
	// Tour starts and ends at the start vertex; len(Tour) == n+1.
	// For n == 1 it is [start, start].
	Tour []int

	// Cost is the sum of the edge weights along Tour.
	Cost int64
}

// Sentinel errors returned by the solver and its helpers.
var (
	// ErrEmptyGraph indicates a matrix with zero rows.
	ErrEmptyGraph = errors.New("tsp: graph is empty")

	// ErrNonSquare indicates that some row length differs from the row count.
	// Returned wrapped in *NonSquareError.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrStartOutOfRange indicates a start vertex outside [0, n).
	// Returned wrapped in *StartOutOfRangeError.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrTooManyNodes indicates n > MaxNodes.
	ErrTooManyNodes = errors.New("tsp: too many nodes for exact solver")

	// ErrNoPath indicates that no finite Hamiltonian cycle through the start
	// vertex was produced.
	ErrNoPath = errors.New("tsp: no feasible tour")

	// ErrInternal marks a violated solver invariant. It never appears alone
	// for a tour failure: see InternalError.
	ErrInternal = errors.New("tsp: internal solver error")

	// ErrDimensionMismatch indicates a tour or index that does not fit the
	// matrix it is checked against.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")
)

// NonSquareError reports the first row whose length differs from the row count.
type NonSquareError struct {
	Rows int
	Cols int
}

func (e *NonSquareError) Error() string {
	return fmt.Sprintf("tsp: matrix is not square: %d rows, %d columns", e.Rows, e.Cols)
}

func (e *NonSquareError) Unwrap() error { return ErrNonSquare }

// StartOutOfRangeError reports an invalid start vertex.
type StartOutOfRangeError struct {
	NumNodes int
	Start    int
}

func (e *StartOutOfRangeError) Error() string {
	return fmt.Sprintf("tsp: start vertex %d out of range, graph has %d nodes", e.Start, e.NumNodes)
}

func (e *StartOutOfRangeError) Unwrap() error { return ErrStartOutOfRange }

// InternalError carries a diagnostic for a tour that could not be rebuilt
// from the DP table. It matches both ErrNoPath and ErrInternal, so callers
// that only care about feasibility see ErrNoPath.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "tsp: no feasible tour: internal solver error: " + e.Msg
}

func (e *InternalError) Unwrap() []error { return []error{ErrNoPath, ErrInternal} }

func internalf(format string, args ...any) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
