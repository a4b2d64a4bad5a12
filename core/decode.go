// File: decode.go
// Role: reading and writing graph descriptions.
//
// Two shapes are accepted for every node entry, in YAML or JSON (JSON is
// parsed as YAML flow syntax):
//
//	["A", ["B", "C"], [1, 3]]                       # triple form
//	{label: A, neighbors: [B, C], weights: [1, 3]}  # mapping form
//
// The document root is either a sequence of entries or a mapping with a
// "nodes" key holding that sequence.

package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadDescription indicates a description document that cannot be decoded.
var ErrBadDescription = errors.New("core: malformed graph description")

// tripleLen is the number of elements in the triple form of a node entry.
const tripleLen = 3

// nodeSpecFields mirrors NodeSpec without its custom unmarshaller.
type nodeSpecFields NodeSpec

// UnmarshalYAML decodes either the triple or the mapping form of a node entry.
func (s *NodeSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) != tripleLen {
			return fmt.Errorf("line %d: node entry has %d elements, want %d: %w",
				value.Line, len(value.Content), tripleLen, ErrBadDescription)
		}
		var out NodeSpec
		if err := value.Content[0].Decode(&out.Label); err != nil {
			return fmt.Errorf("line %d: label: %w", value.Line, err)
		}
		if err := value.Content[1].Decode(&out.Neighbors); err != nil {
			return fmt.Errorf("line %d: neighbours of %q: %w", value.Line, out.Label, err)
		}
		if err := value.Content[2].Decode(&out.Weights); err != nil {
			return fmt.Errorf("line %d: weights of %q: %w", value.Line, out.Label, err)
		}
		*s = out

		return nil
	case yaml.MappingNode:
		var out nodeSpecFields
		if err := value.Decode(&out); err != nil {
			return err
		}
		*s = NodeSpec(out)

		return nil
	default:
		return fmt.Errorf("line %d: unexpected node entry: %w", value.Line, ErrBadDescription)
	}
}

// document is the mapping-rooted form of a description file.
type document struct {
	Nodes Description `yaml:"nodes"`
}

// DecodeDescription reads a Description from r.
func DecodeDescription(r io.Reader) (Description, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("DecodeDescription: empty document: %w", ErrBadDescription)
		}
		return nil, fmt.Errorf("DecodeDescription: %w", err)
	}

	body := &root
	if body.Kind == yaml.DocumentNode && len(body.Content) == 1 {
		body = body.Content[0]
	}

	switch body.Kind {
	case yaml.SequenceNode:
		var desc Description
		if err := body.Decode(&desc); err != nil {
			return nil, fmt.Errorf("DecodeDescription: %w", err)
		}
		return desc, nil
	case yaml.MappingNode:
		var doc document
		if err := body.Decode(&doc); err != nil {
			return nil, fmt.Errorf("DecodeDescription: %w", err)
		}
		return doc.Nodes, nil
	default:
		return nil, fmt.Errorf("DecodeDescription: root must be a sequence or mapping: %w", ErrBadDescription)
	}
}

// LoadDescription opens path and decodes it with DecodeDescription.
func LoadDescription(path string) (Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadDescription: %w", err)
	}
	defer f.Close()

	desc, err := DecodeDescription(f)
	if err != nil {
		return nil, fmt.Errorf("LoadDescription(%s): %w", path, err)
	}

	return desc, nil
}

// Load reads a description file and builds the Graph in one step.
func Load(path string) (*Graph, error) {
	desc, err := LoadDescription(path)
	if err != nil {
		return nil, err
	}

	return New(desc)
}

// EncodeDescription writes desc to w as a mapping-rooted YAML document.
func EncodeDescription(w io.Writer, desc Description) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Nodes: desc}); err != nil {
		return fmt.Errorf("EncodeDescription: %w", err)
	}

	return enc.Close()
}

// Describe converts g back into a Description in which every node lists all of
// its neighbours, so each edge appears once per endpoint.
func (g *Graph) Describe() Description {
	desc := make(Description, 0, len(g.nodes))
	for _, n := range g.nodes {
		spec := NodeSpec{
			Label:     n.Label,
			Neighbors: make([]string, 0, len(n.edges)),
			Weights:   make([]float64, 0, len(n.edges)),
		}
		for _, e := range n.Edges() {
			spec.Neighbors = append(spec.Neighbors, e.Other(n.Label))
			spec.Weights = append(spec.Weights, e.Weight)
		}
		desc = append(desc, spec)
	}

	return desc
}
