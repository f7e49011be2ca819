package graph

import (
	"encoding/json"
	"fmt"
)

// NodeType tags the eleven node variants of a scene graph. All type-specific
// behavior switches on this tag.
type NodeType string

const (
	NodeStart       NodeType = "start"
	NodeDialogue    NodeType = "dialogue"
	NodeChoice      NodeType = "choice"
	NodeBranch      NodeType = "branch"
	NodeVariableSet NodeType = "variable_set"
	NodeVariableGet NodeType = "variable_get"
	NodeNPC         NodeType = "npc"
	NodeEncounter   NodeType = "encounter"
	NodeQuest       NodeType = "quest"
	NodeRunScene    NodeType = "run_scene"
	NodeComment     NodeType = "comment"
)

func (t NodeType) Valid() bool {
	switch t {
	case NodeStart, NodeDialogue, NodeChoice, NodeBranch, NodeVariableSet,
		NodeVariableGet, NodeNPC, NodeEncounter, NodeQuest, NodeRunScene, NodeComment:
		return true
	}
	return false
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a typed unit of narrative logic. Data always holds the variant
// matching Type.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
	Selected bool     `json:"selected,omitempty"`
}

// NewNode materializes a node of the given type at a canvas position with a
// fully default-initialized payload.
func NewNode(id string, t NodeType, pos Position) (Node, error) {
	data, err := DefaultData(t)
	if err != nil {
		return Node{}, err
	}
	return Node{ID: id, Type: t, Position: pos, Data: data}, nil
}

func (n *Node) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID       string          `json:"id"`
		Type     NodeType        `json:"type"`
		Position Position        `json:"position"`
		Data     json.RawMessage `json:"data"`
		Selected bool            `json:"selected"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	n.ID = raw.ID
	n.Type = raw.Type
	n.Position = raw.Position
	n.Selected = raw.Selected
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		n.Data = nil
		return nil
	}
	data, err := UnmarshalData(raw.Type, raw.Data)
	if err != nil {
		return fmt.Errorf("node %s: %w", raw.ID, err)
	}
	n.Data = data
	return nil
}

// Edge is a directed connection between two node handles. Multiple edges may
// share a source (branching) or a target (merging).
type Edge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

// Viewport is per-scene camera state. It carries no graph semantics.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// DefaultViewport is the camera used when a scene has none persisted.
func DefaultViewport() Viewport {
	return Viewport{X: 0, Y: 0, Zoom: 1}
}

// SceneGraph is the unit of persistence: the full node/edge set of one scene
// plus its optional camera state.
type SceneGraph struct {
	Nodes    []Node    `json:"nodes"`
	Edges    []Edge    `json:"edges"`
	Viewport *Viewport `json:"viewport,omitempty"`
}
