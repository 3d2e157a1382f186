package instance

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/heldkarp/tsp"
)

// yamlInstance is the on-disk YAML shape.
type yamlInstance struct {
	Start int   `yaml:"start"`
	Dist  []row `yaml:"dist"`
}

// row is one matrix row, always written in flow style: [0, 10, inf].
type row []weight

// MarshalYAML implements yaml.Marshaler.
func (r row) MarshalYAML() (interface{}, error) {
	var (
		node = &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		j    int
	)
	for j = 0; j < len(r); j++ {
		if int32(r[j]) == tsp.NoEdge {
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: infToken})
			continue
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(r[j]), 10)})
	}

	return node, nil
}

// weight is an edge cost that round-trips tsp.NoEdge as "inf".
type weight int32

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *weight) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrSyntax, "line %d: edge weight must be a scalar", value.Line)
	}
	v, err := parseWeight(strings.TrimSpace(value.Value))
	if err != nil {
		return errors.Wrapf(err, "line %d, column %d", value.Line, value.Column)
	}
	*w = weight(v)

	return nil
}

// ParseYAML decodes a YAML instance. Unknown keys are rejected.
func ParseYAML(r io.Reader) (*Instance, error) {
	var (
		dec = yaml.NewDecoder(r)
		doc yamlInstance
	)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrTruncated, "empty YAML document")
		}
		if errors.Is(err, ErrSyntax) || errors.Is(err, ErrRange) {
			return nil, err
		}
		return nil, errors.Wrapf(ErrSyntax, "decode YAML: %v", err)
	}

	var (
		dist = make(tsp.Matrix, len(doc.Dist))
		i, j int
	)
	for i = 0; i < len(doc.Dist); i++ {
		dist[i] = make([]int32, len(doc.Dist[i]))
		for j = 0; j < len(doc.Dist[i]); j++ {
			dist[i][j] = int32(doc.Dist[i][j])
		}
	}

	return &Instance{Dist: dist, Start: doc.Start}, nil
}

// WriteYAML encodes inst as YAML with one flow-style row per line.
func WriteYAML(w io.Writer, inst *Instance) error {
	var (
		doc = yamlInstance{Start: inst.Start, Dist: make([]row, len(inst.Dist))}
		i, j int
	)
	for i = 0; i < len(inst.Dist); i++ {
		doc.Dist[i] = make(row, len(inst.Dist[i]))
		for j = 0; j < len(inst.Dist[i]); j++ {
			doc.Dist[i][j] = weight(inst.Dist[i][j])
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode YAML")
	}

	return errors.Wrap(enc.Close(), "encode YAML")
}
