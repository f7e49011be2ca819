package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNode(t *testing.T, id string, typ NodeType) Node {
	t.Helper()
	n, err := NewNode(id, typ, Position{})
	require.NoError(t, err)
	return n
}

func TestValidateOK(t *testing.T) {
	g := SceneGraph{
		Nodes: []Node{mustNode(t, "n1", NodeStart), mustNode(t, "n2", NodeDialogue)},
		Edges: []Edge{{ID: "e1", Source: "n1", Target: "n2"}},
	}
	assert.NoError(t, Validate(g))
}

func TestValidateNilData(t *testing.T) {
	g := SceneGraph{Nodes: []Node{{ID: "n1", Type: NodeStart}}}
	err := Validate(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilData)
}

func TestValidateUnknownType(t *testing.T) {
	g := SceneGraph{Nodes: []Node{{ID: "n1", Type: NodeType("warp")}}}
	assert.Error(t, Validate(g))
}

func TestValidateVariantMismatch(t *testing.T) {
	data, err := DefaultData(NodeChoice)
	require.NoError(t, err)
	g := SceneGraph{Nodes: []Node{{ID: "n1", Type: NodeDialogue, Data: data}}}
	assert.Error(t, Validate(g))
}

func TestValidateTagMismatch(t *testing.T) {
	g := SceneGraph{Nodes: []Node{{
		ID:   "n1",
		Type: NodeDialogue,
		Data: &DialogueData{Common: Common{Type: NodeChoice}},
	}}}
	assert.Error(t, Validate(g))
}

func TestValidateDanglingEdge(t *testing.T) {
	g := SceneGraph{
		Nodes: []Node{mustNode(t, "n1", NodeStart)},
		Edges: []Edge{{ID: "e1", Source: "n1", Target: "missing"}},
	}
	assert.Error(t, Validate(g))

	g.Edges = []Edge{{ID: "e1", Source: "missing", Target: "n1"}}
	assert.Error(t, Validate(g))
}
