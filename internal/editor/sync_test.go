package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorewright/lorewright/internal/graph"
)

type fakeCanvas struct {
	replaceCalls int
	nodes        []graph.Node
	edges        []graph.Edge
}

func (f *fakeCanvas) Replace(nodes []graph.Node, edges []graph.Edge) {
	f.replaceCalls++
	f.nodes = nodes
	f.edges = edges
}

type fakeTrigger struct {
	touches int
}

func (f *fakeTrigger) Touch() { f.touches++ }

func TestLoadReplacesCanvasWithoutTouch(t *testing.T) {
	store := NewStore()
	canvas := &fakeCanvas{}
	trigger := &fakeTrigger{}
	NewSynchronizer(store, canvas, trigger)

	n := newNode(t, "n1", graph.NodeStart)
	store.SetScene("scene-1", "Ambush", graph.SceneGraph{Nodes: []graph.Node{n}})

	require.Equal(t, 1, canvas.replaceCalls)
	require.Len(t, canvas.nodes, 1)
	assert.Equal(t, "n1", canvas.nodes[0].ID)
	assert.Equal(t, 0, trigger.touches)
}

func TestCanvasEventNotEchoedBack(t *testing.T) {
	store := NewStore()
	canvas := &fakeCanvas{}
	trigger := &fakeTrigger{}
	y := NewSynchronizer(store, canvas, trigger)

	n := newNode(t, "n1", graph.NodeStart)
	y.NodesChanged([]graph.Node{n})

	// The store was updated but the canvas already holds this state.
	assert.Equal(t, 0, canvas.replaceCalls)
	require.Len(t, store.Nodes(), 1)
	assert.Equal(t, 1, trigger.touches)
}

func TestPanelEditReachesCanvas(t *testing.T) {
	store := NewStore()
	canvas := &fakeCanvas{}
	trigger := &fakeTrigger{}
	NewSynchronizer(store, canvas, trigger)

	store.AddNode(newNode(t, "n1", graph.NodeDialogue))
	require.NoError(t, store.UpdateNode("n1", map[string]any{"speaker": "Elara"}))

	// Direct store edits flow canonical-to-canvas.
	assert.Equal(t, 2, canvas.replaceCalls)
	assert.Equal(t, 2, trigger.touches)
	d := canvas.nodes[0].Data.(*graph.DialogueData)
	assert.Equal(t, "Elara", d.Speaker)
}

func TestDropMaterializesDefaults(t *testing.T) {
	store := NewStore()
	y := NewSynchronizer(store, &fakeCanvas{}, &fakeTrigger{})

	n, err := y.Drop("dialogue", 100, 200)
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, graph.NodeDialogue, n.Type)
	assert.Equal(t, float64(100), n.Position.X)
	assert.Equal(t, float64(200), n.Position.Y)

	d := n.Data.(*graph.DialogueData)
	assert.Equal(t, "", d.Speaker)
	assert.Equal(t, "", d.Text)
	require.Len(t, store.Nodes(), 1)
}

func TestDropRejectsUnknownType(t *testing.T) {
	store := NewStore()
	y := NewSynchronizer(store, &fakeCanvas{}, &fakeTrigger{})

	_, err := y.Drop("teleporter", 0, 0)
	assert.Error(t, err)
	assert.Empty(t, store.Nodes())
}

func TestConnectAllowsParallelEdges(t *testing.T) {
	store := NewStore()
	y := NewSynchronizer(store, &fakeCanvas{}, &fakeTrigger{})

	e1 := y.Connect("n1", "n2", "default", "")
	e2 := y.Connect("n1", "n2", "default", "")

	assert.NotEqual(t, e1.ID, e2.ID)
	assert.Len(t, store.Edges(), 2)
}

func TestSelectionDoesNotTouchScheduler(t *testing.T) {
	store := NewStore()
	canvas := &fakeCanvas{}
	trigger := &fakeTrigger{}
	y := NewSynchronizer(store, canvas, trigger)

	y.NodeClicked("n1")
	y.EdgeClicked("e1")
	y.PaneClicked()

	assert.Equal(t, 0, trigger.touches)
	assert.Equal(t, 0, canvas.replaceCalls)
}

func TestViewportChangeTouches(t *testing.T) {
	store := NewStore()
	trigger := &fakeTrigger{}
	y := NewSynchronizer(store, &fakeCanvas{}, trigger)

	y.ViewportChanged(graph.Viewport{X: 1, Y: 2, Zoom: 3})

	assert.Equal(t, graph.Viewport{X: 1, Y: 2, Zoom: 3}, store.Viewport())
	assert.Equal(t, 1, trigger.touches)
}
