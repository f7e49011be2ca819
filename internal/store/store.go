// Package store is the relational persistence layer for campaigns, scenes,
// NPCs, quests, and variables.
package store

import (
	"context"
	"errors"

	"github.com/lorewright/lorewright/internal/graph"
	"github.com/lorewright/lorewright/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName rejects a variable whose name already exists in its
	// owner scope.
	ErrDuplicateName = errors.New("variable already exists")
)

// SceneOrder is one entry of a batch reorder.
type SceneOrder struct {
	SceneID string `json:"sceneId"`
	Order   int    `json:"order"`
}

type Store interface {
	Campaigns(ctx context.Context) ([]model.Campaign, error)
	Campaign(ctx context.Context, id string) (model.Campaign, error)
	CreateCampaign(ctx context.Context, name, description string) (model.Campaign, error)
	UpdateCampaign(ctx context.Context, id, name, description string) (model.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error

	ScenesByCampaign(ctx context.Context, campaignID string) ([]model.Scene, error)
	Scene(ctx context.Context, sceneID string) (model.Scene, error)
	CreateScene(ctx context.Context, campaignID, name, description string) (model.Scene, error)
	UpdateScene(ctx context.Context, sceneID, name, description string) (model.Scene, error)
	SaveSceneGraph(ctx context.Context, sceneID string, g graph.SceneGraph) error
	DuplicateScene(ctx context.Context, sceneID, name string) (model.Scene, error)
	ReorderScenes(ctx context.Context, campaignID string, orders []SceneOrder) ([]model.Scene, error)
	DeleteScene(ctx context.Context, sceneID string) error

	NPCsByCampaign(ctx context.Context, campaignID string) ([]model.NPC, error)
	NPC(ctx context.Context, id string) (model.NPC, error)
	CreateNPC(ctx context.Context, npc model.NPC) (model.NPC, error)
	UpdateNPC(ctx context.Context, npc model.NPC) (model.NPC, error)
	DeleteNPC(ctx context.Context, id string) error

	QuestsByCampaign(ctx context.Context, campaignID string) ([]model.Quest, error)
	Quest(ctx context.Context, id string) (model.Quest, error)
	CreateQuest(ctx context.Context, quest model.Quest) (model.Quest, error)
	UpdateQuest(ctx context.Context, quest model.Quest) (model.Quest, error)
	DeleteQuest(ctx context.Context, id string) error

	GlobalVariables(ctx context.Context, campaignID string) ([]model.Variable, error)
	CreateGlobalVariable(ctx context.Context, campaignID string, v model.Variable) (model.Variable, error)
	UpdateGlobalVariable(ctx context.Context, variableID string, value any) (model.Variable, error)
	DeleteGlobalVariable(ctx context.Context, variableID string) error

	LocalVariables(ctx context.Context, sceneID string) ([]model.Variable, error)
	CreateLocalVariable(ctx context.Context, sceneID string, v model.Variable) (model.Variable, error)
	UpdateLocalVariable(ctx context.Context, variableID string, value any) (model.Variable, error)
	DeleteLocalVariable(ctx context.Context, variableID string) error

	Close() error
}
