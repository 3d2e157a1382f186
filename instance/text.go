package instance

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/heldkarp/tsp"
)

// maxLineBytes bounds a single input line; a 24×24 row of int32 fits easily.
const maxLineBytes = 1 << 20

// ParseText reads the line-oriented encoding from r.
// Lines after the start vertex are ignored.
func ParseText(r io.Reader) (*Instance, error) {
	var (
		sc   = bufio.NewScanner(r)
		line int
	)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", errors.Wrapf(err, "line %d: reading %s", line+1, what)
			}
			return "", errors.Wrapf(ErrTruncated, "line %d: missing %s", line+1, what)
		}
		line++
		return strings.TrimSpace(sc.Text()), nil
	}

	s, err := next("node count")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "line %d: node count %q is not an integer", line, s)
	}
	if n <= 0 {
		return nil, errors.Wrapf(ErrRange, "line %d: node count must be greater than 0, got %d", line, n)
	}
	if n > tsp.MaxNodes {
		return nil, errors.Wrapf(ErrRange, "line %d: node count must be at most %d, got %d", line, tsp.MaxNodes, n)
	}

	var (
		dist = make(tsp.Matrix, n)
		i    int
	)
	for i = 0; i < n; i++ {
		s, err = next("matrix row " + strconv.Itoa(i+1))
		if err != nil {
			return nil, err
		}
		dist[i], err = parseRow(s, n, line)
		if err != nil {
			return nil, err
		}
	}

	s, err = next("start vertex")
	if err != nil {
		return nil, err
	}
	start, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "line %d: start vertex %q is not an integer", line, s)
	}
	if start < 0 || start >= n {
		return nil, errors.Wrapf(ErrRange, "line %d: start vertex must be between 0 and %d, got %d", line, n-1, start)
	}

	return &Instance{Dist: dist, Start: start}, nil
}

func parseRow(s string, n, line int) ([]int32, error) {
	var fields = strings.Fields(s)
	if len(fields) != n {
		return nil, errors.Wrapf(ErrShape, "line %d: row has %d values, want %d", line, len(fields), n)
	}

	var (
		row = make([]int32, n)
		j   int
		err error
	)
	for j = 0; j < n; j++ {
		row[j], err = parseWeight(fields[j])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d, column %d", line, j+1)
		}
	}

	return row, nil
}

// parseWeight accepts a 32-bit integer or "inf".
func parseWeight(s string) (int32, error) {
	if strings.EqualFold(s, infToken) {
		return tsp.NoEdge, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return 0, errors.Wrapf(ErrRange, "%q does not fit in 32 bits", s)
		}
		return 0, errors.Wrapf(ErrSyntax, "%q is not an integer", s)
	}

	return int32(v), nil
}

// WriteText writes inst in the line-oriented encoding. Missing edges are
// written as the numeric sentinel so older readers accept the output.
func WriteText(w io.Writer, inst *Instance) error {
	var (
		bw   = bufio.NewWriter(w)
		i, j int
	)
	bw.WriteString(strconv.Itoa(len(inst.Dist)))
	bw.WriteByte('\n')
	for i = 0; i < len(inst.Dist); i++ {
		for j = 0; j < len(inst.Dist[i]); j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatInt(int64(inst.Dist[i][j]), 10))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(strconv.Itoa(inst.Start))
	bw.WriteByte('\n')

	return errors.Wrap(bw.Flush(), "write instance")
}
