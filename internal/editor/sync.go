package editor

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lorewright/lorewright/internal/graph"
)

// Canvas is the transient representation used by the rendering surface. On a
// scene load its working copy is replaced wholesale from the canonical store.
type Canvas interface {
	Replace(nodes []graph.Node, edges []graph.Edge)
}

// Trigger receives a signal for every durable user edit; the persistence
// scheduler implements it.
type Trigger interface {
	Touch()
}

// Synchronizer reconciles the canonical store with the canvas. Flow is
// one-directional per event: canvas events go local-to-canonical, loads go
// canonical-to-local. While a canvas event is being applied the resulting
// store change is not echoed back, which breaks the feedback cycle.
type Synchronizer struct {
	store   *Store
	canvas  Canvas
	trigger Trigger

	applyingCanvas atomic.Bool
}

func NewSynchronizer(store *Store, canvas Canvas, trigger Trigger) *Synchronizer {
	y := &Synchronizer{store: store, canvas: canvas, trigger: trigger}
	store.OnChange(y.onStoreChange)
	return y
}

func (y *Synchronizer) onStoreChange(c Change) {
	if c.Kind != ChangeGraph {
		return
	}
	if !y.applyingCanvas.Load() {
		y.canvas.Replace(y.store.Nodes(), y.store.Edges())
	}
	// A load never arms the scheduler: saving a freshly loaded scene back
	// would be a no-op at best and an overwrite at worst.
	if c.Origin == OriginUser && y.trigger != nil {
		y.trigger.Touch()
	}
}

func (y *Synchronizer) fromCanvas(apply func()) {
	y.applyingCanvas.Store(true)
	defer y.applyingCanvas.Store(false)
	apply()
}

// NodesChanged reports the canvas's node working copy after a drag or an
// in-canvas delete.
func (y *Synchronizer) NodesChanged(nodes []graph.Node) {
	y.fromCanvas(func() { y.store.ReplaceNodes(nodes) })
}

func (y *Synchronizer) EdgesChanged(edges []graph.Edge) {
	y.fromCanvas(func() { y.store.ReplaceEdges(edges) })
}

// Connect accepts any (sourceHandle, targetHandle) pair the canvas offers.
// No dedupe: parallel edges between the same handles are allowed.
func (y *Synchronizer) Connect(source, target, sourceHandle, targetHandle string) graph.Edge {
	e := graph.Edge{
		ID:           uuid.New().String(),
		Source:       source,
		Target:       target,
		SourceHandle: sourceHandle,
		TargetHandle: targetHandle,
	}
	y.fromCanvas(func() { y.store.AddEdge(e) })
	return e
}

// Drop materializes a node from the palette's drop payload: a single type-tag
// string plus drop coordinates. Every required field of the variant's data
// shape is default-initialized here, exactly once.
func (y *Synchronizer) Drop(typeTag string, x, yPos float64) (graph.Node, error) {
	t := graph.NodeType(typeTag)
	if !t.Valid() {
		return graph.Node{}, fmt.Errorf("unknown node type %q", typeTag)
	}
	n, err := graph.NewNode(uuid.New().String(), t, graph.Position{X: x, Y: yPos})
	if err != nil {
		return graph.Node{}, err
	}
	y.fromCanvas(func() { y.store.AddNode(n) })
	return n, nil
}

func (y *Synchronizer) NodeClicked(nodeID string) {
	y.store.SelectNode(nodeID)
}

func (y *Synchronizer) EdgeClicked(edgeID string) {
	y.store.SelectEdge(edgeID)
}

// PaneClicked clears the selection.
func (y *Synchronizer) PaneClicked() {
	y.store.SelectNode("")
}

func (y *Synchronizer) ViewportChanged(v graph.Viewport) {
	y.fromCanvas(func() { y.store.SetViewport(v) })
}
