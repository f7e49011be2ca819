// Package editor holds the client-side core of the scene editor: the
// canonical store for the open scene's graph, the canvas synchronization
// layer, and the debounced persistence scheduler.
package editor

import (
	"sync"

	"github.com/lorewright/lorewright/internal/graph"
)

// Origin tags where a change came from. Loads (scene switch) flow
// canonical-to-canvas; user edits flow the other way and arm the persistence
// scheduler. Origin is an explicit tag, never inferred by diffing content.
type Origin int

const (
	OriginUser Origin = iota
	OriginLoad
)

// ChangeKind separates durable graph content from transient UI state.
type ChangeKind int

const (
	ChangeGraph ChangeKind = iota
	ChangeSelection
)

type Change struct {
	Origin Origin
	Kind   ChangeKind
}

// Store is the single source of truth for the currently open scene's nodes,
// edges, viewport, and selection. One scene is active at a time.
type Store struct {
	mu sync.Mutex

	sceneID   string
	sceneName string
	nodes     []graph.Node
	edges     []graph.Edge
	viewport  graph.Viewport

	selectedNodeID string
	selectedEdgeID string

	listeners []func(Change)
}

func NewStore() *Store {
	return &Store{viewport: graph.DefaultViewport()}
}

// OnChange registers a listener invoked synchronously after every mutation.
// Listeners must not mutate the store re-entrantly.
func (s *Store) OnChange(fn func(Change)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify(c Change) {
	s.mu.Lock()
	fns := make([]func(Change), len(s.listeners))
	copy(fns, s.listeners)
	s.mu.Unlock()
	for _, fn := range fns {
		fn(c)
	}
}

// SetScene replaces the open scene wholesale and clears selection. Called
// once per scene load.
func (s *Store) SetScene(sceneID, sceneName string, g graph.SceneGraph) {
	s.mu.Lock()
	s.sceneID = sceneID
	s.sceneName = sceneName
	s.nodes = append([]graph.Node(nil), g.Nodes...)
	s.edges = append([]graph.Edge(nil), g.Edges...)
	if g.Viewport != nil {
		s.viewport = *g.Viewport
	} else {
		s.viewport = graph.DefaultViewport()
	}
	s.selectedNodeID = ""
	s.selectedEdgeID = ""
	s.mu.Unlock()
	s.notify(Change{Origin: OriginLoad, Kind: ChangeGraph})
}

func (s *Store) AddNode(n graph.Node) {
	s.mu.Lock()
	s.nodes = append(s.nodes, n)
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeGraph})
}

// UpdateNode merges a partial patch into the data of the matching node.
// No-op if the node is not found; the variant tag cannot be patched.
func (s *Store) UpdateNode(nodeID string, patch map[string]any) error {
	s.mu.Lock()
	idx := -1
	for i := range s.nodes {
		if s.nodes[i].ID == nodeID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return nil
	}
	merged, err := graph.MergeData(s.nodes[idx].Data, patch)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.nodes[idx].Data = merged
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeGraph})
	return nil
}

// DeleteNode removes the node and every edge incident to it, and clears the
// selection if the deleted node was selected.
func (s *Store) DeleteNode(nodeID string) {
	s.mu.Lock()
	nodes := s.nodes[:0]
	for _, n := range s.nodes {
		if n.ID != nodeID {
			nodes = append(nodes, n)
		}
	}
	s.nodes = nodes
	edges := s.edges[:0]
	for _, e := range s.edges {
		if e.Source != nodeID && e.Target != nodeID {
			edges = append(edges, e)
		}
	}
	s.edges = edges
	if s.selectedNodeID == nodeID {
		s.selectedNodeID = ""
	}
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeGraph})
}

// AddEdge appends an edge. Duplicate edges between the same handles are
// accepted; id uniqueness is the caller's responsibility.
func (s *Store) AddEdge(e graph.Edge) {
	s.mu.Lock()
	s.edges = append(s.edges, e)
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeGraph})
}

func (s *Store) DeleteEdge(edgeID string) {
	s.mu.Lock()
	edges := s.edges[:0]
	for _, e := range s.edges {
		if e.ID != edgeID {
			edges = append(edges, e)
		}
	}
	s.edges = edges
	if s.selectedEdgeID == edgeID {
		s.selectedEdgeID = ""
	}
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeGraph})
}

// ReplaceNodes overwrites the node list wholesale with the canvas's working
// copy. Last writer wins, no merge.
func (s *Store) ReplaceNodes(nodes []graph.Node) {
	s.mu.Lock()
	s.nodes = append([]graph.Node(nil), nodes...)
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeGraph})
}

func (s *Store) ReplaceEdges(edges []graph.Edge) {
	s.mu.Lock()
	s.edges = append([]graph.Edge(nil), edges...)
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeGraph})
}

// SelectNode selects a node ("" clears). Node and edge selection are
// mutually exclusive.
func (s *Store) SelectNode(nodeID string) {
	s.mu.Lock()
	s.selectedNodeID = nodeID
	s.selectedEdgeID = ""
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeSelection})
}

func (s *Store) SelectEdge(edgeID string) {
	s.mu.Lock()
	s.selectedEdgeID = edgeID
	s.selectedNodeID = ""
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeSelection})
}

// SetViewport replaces camera state. Zoom is not validated.
func (s *Store) SetViewport(v graph.Viewport) {
	s.mu.Lock()
	s.viewport = v
	s.mu.Unlock()
	s.notify(Change{Origin: OriginUser, Kind: ChangeGraph})
}

func (s *Store) SceneID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sceneID
}

func (s *Store) SceneName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sceneName
}

func (s *Store) Nodes() []graph.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]graph.Node(nil), s.nodes...)
}

func (s *Store) Edges() []graph.Edge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]graph.Edge(nil), s.edges...)
}

func (s *Store) Viewport() graph.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewport
}

// Selection returns the selected node and edge ids; at most one is non-empty.
func (s *Store) Selection() (nodeID, edgeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedNodeID, s.selectedEdgeID
}

// Graph snapshots the canonical state in the shape the persistence layer
// expects.
func (s *Store) Graph() graph.SceneGraph {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.viewport
	return graph.SceneGraph{
		Nodes:    append([]graph.Node(nil), s.nodes...),
		Edges:    append([]graph.Edge(nil), s.edges...),
		Viewport: &v,
	}
}
