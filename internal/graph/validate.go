package graph

import (
	"errors"
	"fmt"
)

var ErrNilData = errors.New("node has no data payload")

// Validate checks the structural contract of a scene graph: every node
// carries a payload whose tags match its type, and every edge endpoint
// resolves to a node in the same graph.
func Validate(g SceneGraph) error {
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if !n.Type.Valid() {
			return fmt.Errorf("node %s: unknown type %q", n.ID, n.Type)
		}
		if n.Data == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrNilData)
		}
		if n.Data.DataType() != n.Type {
			return fmt.Errorf("node %s: data variant %s does not match node type %s", n.ID, n.Data.DataType(), n.Type)
		}
		if tag := n.Data.Tag(); tag != n.Type {
			return fmt.Errorf("node %s: data type tag %q does not match node type %q", n.ID, tag, n.Type)
		}
		ids[n.ID] = struct{}{}
	}
	for _, e := range g.Edges {
		if _, ok := ids[e.Source]; !ok {
			return fmt.Errorf("edge %s: source %s not in graph", e.ID, e.Source)
		}
		if _, ok := ids[e.Target]; !ok {
			return fmt.Errorf("edge %s: target %s not in graph", e.ID, e.Target)
		}
	}
	return nil
}
