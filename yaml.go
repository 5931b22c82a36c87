package wiremap

import (
	"time"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. The map is presented as a mapping
// node with entries in insertion order and keys passed through the
// strategy's Project.
func (m *Map[W, D, V, S]) MarshalYAML() (any, error) {
	start := time.Now()
	node, err := m.marshalYAML()
	EmitEncodeComplete("yaml", len(m.entries), -1, time.Since(start), err)
	return node, err
}

func (m *Map[W, D, V, S]) marshalYAML() (*yaml.Node, error) {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}
	node.Content = make([]*yaml.Node, 0, 2*len(m.entries))
	var s S
	for _, e := range m.entries {
		var kn, vn yaml.Node
		if err := kn.Encode(s.Project(e.Key)); err != nil {
			return nil, err
		}
		if err := vn.Encode(e.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A node that is not a mapping
// is rejected with ErrNotMap; entries are consumed in document order
// through the strategy's Lift, aborting on the first bad key. Any previous
// contents of m are discarded.
func (m *Map[W, D, V, S]) UnmarshalYAML(node *yaml.Node) error {
	start := time.Now()
	err := m.unmarshalYAML(node)
	EmitDecodeComplete("yaml", len(m.entries), time.Since(start), err)
	return err
}

func (m *Map[W, D, V, S]) unmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return newShapeError(node.Tag, nil)
	}
	m.Reset()
	m.Grow(len(node.Content) / 2)
	var s S
	for i := 0; i+1 < len(node.Content); i += 2 {
		var w W
		if err := node.Content[i].Decode(&w); err != nil {
			return newKeyError(nil, err)
		}
		d, err := s.Lift(w)
		if err != nil {
			return newKeyError(w, err)
		}
		var v V
		if err := node.Content[i+1].Decode(&v); err != nil {
			return err
		}
		m.InsertUnchecked(d, v)
	}
	return nil
}
