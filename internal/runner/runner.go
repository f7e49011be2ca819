// Package runner walks a scene graph from its start node, evaluating branch
// conditions and choice requirements against the variable store and applying
// variable mutations, while reporting NPC, quest, encounter, and scene-jump
// triggers to the caller.
package runner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lorewright/lorewright/internal/graph"
	"github.com/lorewright/lorewright/internal/model"
	"github.com/lorewright/lorewright/internal/variable"
)

// DefaultOutputHandle is the source handle a branch node uses when no
// condition matches and defaultOutput is enabled. Condition and choice
// handles are the condition/option ids.
const DefaultOutputHandle = "default"

const defaultMaxSteps = 1000

type EventKind string

const (
	EventDialogue  EventKind = "dialogue"
	EventNPC       EventKind = "npc"
	EventEncounter EventKind = "encounter"
	EventQuest     EventKind = "quest"
	EventSceneJump EventKind = "run_scene"
)

// Event is a narrative trigger surfaced during a run.
type Event struct {
	Kind   EventKind
	NodeID string
	Data   graph.NodeData
}

// ChooseFunc picks one of the eligible options at a choice node. The default
// picks the first.
type ChooseFunc func(node graph.Node, eligible []graph.ChoiceOption) (optionID string, err error)

type Config struct {
	Graph      graph.SceneGraph
	Vars       *variable.Store
	SceneID    string
	CampaignID string
	OnEvent    func(Event)
	Choose     ChooseFunc
	// MaxSteps bounds cyclic graphs; 0 means the default limit.
	MaxSteps int
}

type Runner struct {
	cfg     Config
	nodes   map[string]graph.Node
	edges   map[string][]graph.Edge // by source node id, in graph order
	outputs map[string]any
}

func New(cfg Config) (*Runner, error) {
	if err := graph.Validate(cfg.Graph); err != nil {
		return nil, err
	}
	if cfg.Vars == nil {
		cfg.Vars = variable.NewStore()
	}
	if cfg.Choose == nil {
		cfg.Choose = func(_ graph.Node, eligible []graph.ChoiceOption) (string, error) {
			return eligible[0].ID, nil
		}
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = defaultMaxSteps
	}
	r := &Runner{
		cfg:     cfg,
		nodes:   make(map[string]graph.Node, len(cfg.Graph.Nodes)),
		edges:   make(map[string][]graph.Edge),
		outputs: make(map[string]any),
	}
	for _, n := range cfg.Graph.Nodes {
		r.nodes[n.ID] = n
	}
	for _, e := range cfg.Graph.Edges {
		r.edges[e.Source] = append(r.edges[e.Source], e)
	}
	return r, nil
}

// Output returns a slot written by a variable_get node during the run.
func (r *Runner) Output(name string) (any, bool) {
	v, ok := r.outputs[name]
	return v, ok
}

// Run walks the graph until flow reaches a node with no outgoing edge, a
// non-returning scene jump, or the step limit.
func (r *Runner) Run(ctx context.Context) error {
	cur, ok := r.start()
	if !ok {
		return fmt.Errorf("scene has no start node")
	}
	for steps := 0; ; steps++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if steps >= r.cfg.MaxSteps {
			return fmt.Errorf("step limit %d exceeded, graph may be cyclic", r.cfg.MaxSteps)
		}
		next, done, err := r.step(cur)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		cur = next
	}
}

func (r *Runner) start() (graph.Node, bool) {
	for _, n := range r.cfg.Graph.Nodes {
		if n.Type == graph.NodeStart {
			return n, true
		}
	}
	return graph.Node{}, false
}

func (r *Runner) step(cur graph.Node) (graph.Node, bool, error) {
	switch d := cur.Data.(type) {
	case *graph.StartData:
		return r.follow(cur.ID, "")

	case *graph.DialogueData:
		r.emit(Event{Kind: EventDialogue, NodeID: cur.ID, Data: d})
		return r.follow(cur.ID, "")

	case *graph.ChoiceData:
		eligible := r.eligibleChoices(d)
		if len(eligible) == 0 {
			return r.follow(cur.ID, "")
		}
		optionID, err := r.cfg.Choose(cur, eligible)
		if err != nil {
			return graph.Node{}, false, err
		}
		return r.follow(cur.ID, optionID)

	case *graph.BranchData:
		for _, cond := range d.Conditions {
			current, _ := r.lookup(cond.Variable)
			if Eval(cond.Operator, current, cond.Value) {
				return r.follow(cur.ID, cond.ID)
			}
		}
		if d.DefaultOutput {
			return r.follow(cur.ID, DefaultOutputHandle)
		}
		return graph.Node{}, true, nil

	case *graph.VariableSetData:
		if err := r.applySet(d); err != nil {
			return graph.Node{}, false, fmt.Errorf("node %s: %w", cur.ID, err)
		}
		return r.follow(cur.ID, "")

	case *graph.VariableGetData:
		value, _ := r.lookup(d.VariableName)
		r.outputs[d.OutputVariable] = value
		return r.follow(cur.ID, "")

	case *graph.NPCData:
		r.emit(Event{Kind: EventNPC, NodeID: cur.ID, Data: d})
		return r.follow(cur.ID, "")

	case *graph.EncounterData:
		r.emit(Event{Kind: EventEncounter, NodeID: cur.ID, Data: d})
		return r.follow(cur.ID, "")

	case *graph.QuestData:
		r.emit(Event{Kind: EventQuest, NodeID: cur.ID, Data: d})
		return r.follow(cur.ID, "")

	case *graph.RunSceneData:
		r.emit(Event{Kind: EventSceneJump, NodeID: cur.ID, Data: d})
		if !d.ReturnToSource {
			return graph.Node{}, true, nil
		}
		return r.follow(cur.ID, "")

	case *graph.CommentData:
		// Comment nodes have no handles; flow cannot reach them.
		return graph.Node{}, true, nil
	}
	return graph.Node{}, false, fmt.Errorf("node %s: unhandled type %s", cur.ID, cur.Type)
}

// follow walks the first outgoing edge matching the handle; an empty handle
// accepts any outgoing edge. Flow ends when there is none.
func (r *Runner) follow(nodeID, handle string) (graph.Node, bool, error) {
	for _, e := range r.edges[nodeID] {
		if handle != "" && e.SourceHandle != handle {
			continue
		}
		next, ok := r.nodes[e.Target]
		if !ok {
			return graph.Node{}, false, fmt.Errorf("edge %s: target %s not in graph", e.ID, e.Target)
		}
		return next, false, nil
	}
	return graph.Node{}, true, nil
}

func (r *Runner) eligibleChoices(d *graph.ChoiceData) []graph.ChoiceOption {
	eligible := make([]graph.ChoiceOption, 0, len(d.Choices))
	for _, opt := range d.Choices {
		if opt.RequirementVariable == "" {
			eligible = append(eligible, opt)
			continue
		}
		current, ok := r.lookup(opt.RequirementVariable)
		if ok && Eval(graph.OpEquals, current, opt.RequirementValue) {
			eligible = append(eligible, opt)
		}
	}
	return eligible
}

// lookup resolves a variable name, local scope first, then global.
func (r *Runner) lookup(name string) (any, bool) {
	if v, ok := r.cfg.Vars.FindLocalByName(r.cfg.SceneID, name); ok {
		return v.Value, true
	}
	if v, ok := r.cfg.Vars.FindGlobalByName(r.cfg.CampaignID, name); ok {
		return v.Value, true
	}
	return nil, false
}

// applySet writes a variable_set mutation through to the store, creating the
// variable in the target scope when it does not exist yet.
func (r *Runner) applySet(d *graph.VariableSetData) error {
	var existing model.Variable
	var found bool
	if d.IsGlobal {
		existing, found = r.cfg.Vars.FindGlobalByName(r.cfg.CampaignID, d.VariableName)
	} else {
		existing, found = r.cfg.Vars.FindLocalByName(r.cfg.SceneID, d.VariableName)
	}

	current := existing.Value
	if !found {
		current = inferType(d.Value).Zero()
	}
	next, err := Apply(d.Operation, current, d.Value)
	if err != nil {
		return err
	}

	if found {
		patch := variable.Patch{Value: next, SetValue: true}
		if d.IsGlobal {
			r.cfg.Vars.UpdateGlobal(r.cfg.CampaignID, existing.ID, patch)
		} else {
			r.cfg.Vars.UpdateLocal(r.cfg.SceneID, existing.ID, patch)
		}
		return nil
	}

	v := model.Variable{
		ID:    uuid.New().String(),
		Name:  d.VariableName,
		Type:  inferType(next),
		Value: next,
	}
	if d.IsGlobal {
		v.OwnerID = r.cfg.CampaignID
		r.cfg.Vars.AddGlobal(r.cfg.CampaignID, v)
	} else {
		v.OwnerID = r.cfg.SceneID
		r.cfg.Vars.AddLocal(r.cfg.SceneID, v)
	}
	return nil
}

func (r *Runner) emit(ev Event) {
	if r.cfg.OnEvent != nil {
		r.cfg.OnEvent(ev)
	}
}

func inferType(v any) model.VariableType {
	switch v.(type) {
	case float64, float32, int, int64:
		return model.VariableNumber
	case bool:
		return model.VariableBoolean
	}
	return model.VariableString
}
