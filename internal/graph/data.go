package graph

import (
	"encoding/json"
	"fmt"
	"unicode"
)

// Operator is the comparison vocabulary of branch conditions and choice
// requirements.
type Operator string

const (
	OpEquals       Operator = "equals"
	OpNotEquals    Operator = "not_equals"
	OpGreater      Operator = "greater"
	OpLess         Operator = "less"
	OpGreaterEqual Operator = "greater_equal"
	OpLessEqual    Operator = "less_equal"
)

// VariableOp is the mutation vocabulary of variable_set nodes.
type VariableOp string

const (
	VarSet      VariableOp = "set"
	VarAdd      VariableOp = "add"
	VarSubtract VariableOp = "subtract"
	VarMultiply VariableOp = "multiply"
	VarDivide   VariableOp = "divide"
)

type NPCAction string

const (
	NPCIntroduce    NPCAction = "introduce"
	NPCUpdateStatus NPCAction = "update_status"
	NPCMoveLocation NPCAction = "move_location"
)

type QuestAction string

const (
	QuestStart           QuestAction = "start"
	QuestUpdateObjective QuestAction = "update_objective"
	QuestComplete        QuestAction = "complete"
	QuestFail            QuestAction = "fail"
)

// NodeData is the payload union over the eleven node variants. DataType
// returns the static variant tag, which must equal the owning node's Type.
type NodeData interface {
	DataType() NodeType
	Tag() NodeType
}

// Common carries the fields every variant shares. The Type field mirrors the
// wire format, where the payload repeats the node's type tag.
type Common struct {
	Type        NodeType `json:"type"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
}

// Tag returns the type tag stored in the payload itself, which Validate
// checks against the owning node's Type.
func (c Common) Tag() NodeType { return c.Type }

func (c *Common) setTag(t NodeType) {
	if c.Type == "" {
		c.Type = t
	}
}

type StartData struct {
	Common
}

func (StartData) DataType() NodeType { return NodeStart }

type DialogueData struct {
	Common
	Speaker    string `json:"speaker"`
	NPCID      string `json:"npcId,omitempty"`
	Text       string `json:"text"`
	VoiceAudio string `json:"voiceAudio,omitempty"`
}

func (DialogueData) DataType() NodeType { return NodeDialogue }

type ChoiceOption struct {
	ID                  string `json:"id"`
	Text                string `json:"text"`
	RequirementVariable string `json:"requirementVariable,omitempty"`
	RequirementValue    any    `json:"requirementValue,omitempty"`
}

// ChoiceData presents options to the players. Option order is display and
// branch order.
type ChoiceData struct {
	Common
	Prompt  string         `json:"prompt"`
	Choices []ChoiceOption `json:"choices"`
}

func (ChoiceData) DataType() NodeType { return NodeChoice }

type BranchCondition struct {
	ID          string   `json:"id"`
	Variable    string   `json:"variable"`
	Operator    Operator `json:"operator"`
	Value       any      `json:"value"`
	OutputLabel string   `json:"outputLabel,omitempty"`
}

type BranchData struct {
	Common
	Conditions    []BranchCondition `json:"conditions"`
	DefaultOutput bool              `json:"defaultOutput"`
}

func (BranchData) DataType() NodeType { return NodeBranch }

type VariableSetData struct {
	Common
	VariableName string     `json:"variableName"`
	Operation    VariableOp `json:"operation"`
	Value        any        `json:"value"`
	IsGlobal     bool       `json:"isGlobal"`
}

func (VariableSetData) DataType() NodeType { return NodeVariableSet }

type VariableGetData struct {
	Common
	VariableName   string `json:"variableName"`
	OutputVariable string `json:"outputVariable"`
}

func (VariableGetData) DataType() NodeType { return NodeVariableGet }

type NPCData struct {
	Common
	NPCID      string    `json:"npcId"`
	Action     NPCAction `json:"action"`
	CustomData any       `json:"customData,omitempty"`
}

func (NPCData) DataType() NodeType { return NodeNPC }

type Monster struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Count int     `json:"count"`
	CR    float64 `json:"cr"`
}

type EncounterData struct {
	Common
	Name        string    `json:"name"`
	Monsters    []Monster `json:"monsters"`
	Environment string    `json:"environment,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Loot        string    `json:"loot,omitempty"`
	XPReward    int       `json:"xpReward,omitempty"`
}

func (EncounterData) DataType() NodeType { return NodeEncounter }

type QuestData struct {
	Common
	QuestID        string      `json:"questId"`
	Action         QuestAction `json:"action"`
	ObjectiveIndex *int        `json:"objectiveIndex,omitempty"`
}

func (QuestData) DataType() NodeType { return NodeQuest }

// RunSceneData jumps to another scene. ReturnToSource marks call/return
// semantics: flow resumes here when the called scene finishes.
type RunSceneData struct {
	Common
	SceneID        string `json:"sceneId"`
	SceneName      string `json:"sceneName"`
	ReturnToSource bool   `json:"returnToSource"`
}

func (RunSceneData) DataType() NodeType { return NodeRunScene }

// CommentData is annotation only. Comment nodes have no handles and never
// participate in flow.
type CommentData struct {
	Common
	Text  string `json:"text"`
	Color string `json:"color"`
}

func (CommentData) DataType() NodeType { return NodeComment }

// DefaultData builds the payload for a freshly materialized node of type t,
// with every required field of the variant populated exactly once at
// creation.
func DefaultData(t NodeType) (NodeData, error) {
	c := Common{Type: t, Label: defaultLabel(t)}
	switch t {
	case NodeStart:
		return &StartData{Common: c}, nil
	case NodeDialogue:
		return &DialogueData{Common: c, Speaker: "", Text: ""}, nil
	case NodeChoice:
		return &ChoiceData{Common: c, Prompt: "", Choices: []ChoiceOption{}}, nil
	case NodeBranch:
		return &BranchData{Common: c, Conditions: []BranchCondition{}, DefaultOutput: true}, nil
	case NodeVariableSet:
		return &VariableSetData{Common: c, VariableName: "", Operation: VarSet, IsGlobal: false}, nil
	case NodeVariableGet:
		return &VariableGetData{Common: c, VariableName: "", OutputVariable: ""}, nil
	case NodeNPC:
		return &NPCData{Common: c, NPCID: "", Action: NPCIntroduce}, nil
	case NodeEncounter:
		return &EncounterData{Common: c, Name: "", Monsters: []Monster{}}, nil
	case NodeQuest:
		return &QuestData{Common: c, QuestID: "", Action: QuestStart}, nil
	case NodeRunScene:
		return &RunSceneData{Common: c, SceneID: "", SceneName: "", ReturnToSource: false}, nil
	case NodeComment:
		return &CommentData{Common: c, Text: "", Color: ""}, nil
	default:
		return nil, fmt.Errorf("unknown node type %q", t)
	}
}

// UnmarshalData decodes a payload into the variant selected by t. A missing
// type tag in the payload is filled from t; a conflicting one is left for
// Validate to flag.
func UnmarshalData(t NodeType, raw []byte) (NodeData, error) {
	var data NodeData
	switch t {
	case NodeStart:
		data = &StartData{}
	case NodeDialogue:
		data = &DialogueData{}
	case NodeChoice:
		data = &ChoiceData{}
	case NodeBranch:
		data = &BranchData{}
	case NodeVariableSet:
		data = &VariableSetData{}
	case NodeVariableGet:
		data = &VariableGetData{}
	case NodeNPC:
		data = &NPCData{}
	case NodeEncounter:
		data = &EncounterData{}
	case NodeQuest:
		data = &QuestData{}
	case NodeRunScene:
		data = &RunSceneData{}
	case NodeComment:
		data = &CommentData{}
	default:
		return nil, fmt.Errorf("unknown node type %q", t)
	}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to decode %s data: %w", t, err)
	}
	fillType(data, t)
	return data, nil
}

// MergeData merges a partial patch into an existing payload, leaving
// untouched fields unchanged. The variant tag cannot be patched.
func MergeData(data NodeData, patch map[string]any) (NodeData, error) {
	base, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var merged map[string]any
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range patch {
		if k == "type" {
			continue
		}
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	return UnmarshalData(data.DataType(), out)
}

func fillType(data NodeData, t NodeType) {
	if tg, ok := data.(interface{ setTag(NodeType) }); ok {
		tg.setTag(t)
	}
}

// defaultLabel capitalizes the type tag, matching how the palette names a
// dropped node.
func defaultLabel(t NodeType) string {
	s := string(t)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
