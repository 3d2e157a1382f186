// Package instance reads, writes and generates TSP instances for the
// heldkarp command.
//
// Two encodings are supported:
//
//   - Text, line oriented (the classic front-end format):
//
//     4
//     0 10 15 20
//     10 0 35 25
//     15 35 0 30
//     20 25 30 0
//     0
//
//     Line 1 is the node count 0 < N ≤ tsp.MaxNodes, the next N lines hold N integers each,
//     the last line is the 0-based start vertex. A missing edge is written
//     as tsp.NoEdge (1073741823) or as the token "inf".
//
//   - YAML, with the same content under "dist" and "start".
//
// Parsing checks only what the encoding itself implies. Matrix shape and
// start range for YAML input are left to tsp.Solve, which reports them
// with typed errors.
package instance

import (
	"errors"

	"github.com/katalvlaran/heldkarp/tsp"
)

// Instance is a distance matrix plus the vertex the tour must start at.
type Instance struct {
	Dist  tsp.Matrix
	Start int
}

// Format selects an encoding.
type Format string

const (
	// FormatText is the line-oriented encoding.
	FormatText Format = "text"
	// FormatYAML is the YAML encoding.
	FormatYAML Format = "yaml"
)

// infToken is the textual spelling of tsp.NoEdge accepted by both codecs.
const infToken = "inf"

// Sentinel errors. Parse errors wrap one of these with the line number.
var (
	// ErrSyntax indicates a token that is not an integer (or "inf").
	ErrSyntax = errors.New("instance: invalid syntax")

	// ErrShape indicates a row with the wrong number of values.
	ErrShape = errors.New("instance: wrong number of values")

	// ErrRange indicates a value outside its allowed range.
	ErrRange = errors.New("instance: value out of range")

	// ErrTruncated indicates that the input ended early.
	ErrTruncated = errors.New("instance: unexpected end of input")

	// ErrUnknownFormat indicates an unsupported Format value.
	ErrUnknownFormat = errors.New("instance: unknown format")
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "txt", "":
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", ErrUnknownFormat
	}
}
