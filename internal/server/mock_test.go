package server

import (
	"context"

	"github.com/lorewright/lorewright/internal/graph"
	"github.com/lorewright/lorewright/internal/model"
	"github.com/lorewright/lorewright/internal/store"
)

// mockStore delegates to optional function fields; unset methods return the
// zero value.
type mockStore struct {
	CampaignsFn            func(ctx context.Context) ([]model.Campaign, error)
	CampaignFn             func(ctx context.Context, id string) (model.Campaign, error)
	CreateCampaignFn       func(ctx context.Context, name, description string) (model.Campaign, error)
	UpdateCampaignFn       func(ctx context.Context, id, name, description string) (model.Campaign, error)
	DeleteCampaignFn       func(ctx context.Context, id string) error
	ScenesByCampaignFn     func(ctx context.Context, campaignID string) ([]model.Scene, error)
	SceneFn                func(ctx context.Context, sceneID string) (model.Scene, error)
	CreateSceneFn          func(ctx context.Context, campaignID, name, description string) (model.Scene, error)
	UpdateSceneFn          func(ctx context.Context, sceneID, name, description string) (model.Scene, error)
	SaveSceneGraphFn       func(ctx context.Context, sceneID string, g graph.SceneGraph) error
	DuplicateSceneFn       func(ctx context.Context, sceneID, name string) (model.Scene, error)
	ReorderScenesFn        func(ctx context.Context, campaignID string, orders []store.SceneOrder) ([]model.Scene, error)
	DeleteSceneFn          func(ctx context.Context, sceneID string) error
	NPCsByCampaignFn       func(ctx context.Context, campaignID string) ([]model.NPC, error)
	NPCFn                  func(ctx context.Context, id string) (model.NPC, error)
	CreateNPCFn            func(ctx context.Context, npc model.NPC) (model.NPC, error)
	UpdateNPCFn            func(ctx context.Context, npc model.NPC) (model.NPC, error)
	DeleteNPCFn            func(ctx context.Context, id string) error
	QuestsByCampaignFn     func(ctx context.Context, campaignID string) ([]model.Quest, error)
	QuestFn                func(ctx context.Context, id string) (model.Quest, error)
	CreateQuestFn          func(ctx context.Context, quest model.Quest) (model.Quest, error)
	UpdateQuestFn          func(ctx context.Context, quest model.Quest) (model.Quest, error)
	DeleteQuestFn          func(ctx context.Context, id string) error
	GlobalVariablesFn      func(ctx context.Context, campaignID string) ([]model.Variable, error)
	CreateGlobalVariableFn func(ctx context.Context, campaignID string, v model.Variable) (model.Variable, error)
	UpdateGlobalVariableFn func(ctx context.Context, variableID string, value any) (model.Variable, error)
	DeleteGlobalVariableFn func(ctx context.Context, variableID string) error
	LocalVariablesFn       func(ctx context.Context, sceneID string) ([]model.Variable, error)
	CreateLocalVariableFn  func(ctx context.Context, sceneID string, v model.Variable) (model.Variable, error)
	UpdateLocalVariableFn  func(ctx context.Context, variableID string, value any) (model.Variable, error)
	DeleteLocalVariableFn  func(ctx context.Context, variableID string) error
}

var _ store.Store = (*mockStore)(nil)

func (m *mockStore) Campaigns(ctx context.Context) ([]model.Campaign, error) {
	if m.CampaignsFn != nil {
		return m.CampaignsFn(ctx)
	}
	return nil, nil
}

func (m *mockStore) Campaign(ctx context.Context, id string) (model.Campaign, error) {
	if m.CampaignFn != nil {
		return m.CampaignFn(ctx, id)
	}
	return model.Campaign{}, nil
}

func (m *mockStore) CreateCampaign(ctx context.Context, name, description string) (model.Campaign, error) {
	if m.CreateCampaignFn != nil {
		return m.CreateCampaignFn(ctx, name, description)
	}
	return model.Campaign{Name: name, Description: description}, nil
}

func (m *mockStore) UpdateCampaign(ctx context.Context, id, name, description string) (model.Campaign, error) {
	if m.UpdateCampaignFn != nil {
		return m.UpdateCampaignFn(ctx, id, name, description)
	}
	return model.Campaign{ID: id, Name: name, Description: description}, nil
}

func (m *mockStore) DeleteCampaign(ctx context.Context, id string) error {
	if m.DeleteCampaignFn != nil {
		return m.DeleteCampaignFn(ctx, id)
	}
	return nil
}

func (m *mockStore) ScenesByCampaign(ctx context.Context, campaignID string) ([]model.Scene, error) {
	if m.ScenesByCampaignFn != nil {
		return m.ScenesByCampaignFn(ctx, campaignID)
	}
	return nil, nil
}

func (m *mockStore) Scene(ctx context.Context, sceneID string) (model.Scene, error) {
	if m.SceneFn != nil {
		return m.SceneFn(ctx, sceneID)
	}
	return model.Scene{}, nil
}

func (m *mockStore) CreateScene(ctx context.Context, campaignID, name, description string) (model.Scene, error) {
	if m.CreateSceneFn != nil {
		return m.CreateSceneFn(ctx, campaignID, name, description)
	}
	return model.Scene{CampaignID: campaignID, Name: name, Description: description}, nil
}

func (m *mockStore) UpdateScene(ctx context.Context, sceneID, name, description string) (model.Scene, error) {
	if m.UpdateSceneFn != nil {
		return m.UpdateSceneFn(ctx, sceneID, name, description)
	}
	return model.Scene{ID: sceneID, Name: name, Description: description}, nil
}

func (m *mockStore) SaveSceneGraph(ctx context.Context, sceneID string, g graph.SceneGraph) error {
	if m.SaveSceneGraphFn != nil {
		return m.SaveSceneGraphFn(ctx, sceneID, g)
	}
	return nil
}

func (m *mockStore) DuplicateScene(ctx context.Context, sceneID, name string) (model.Scene, error) {
	if m.DuplicateSceneFn != nil {
		return m.DuplicateSceneFn(ctx, sceneID, name)
	}
	return model.Scene{Name: name}, nil
}

func (m *mockStore) ReorderScenes(ctx context.Context, campaignID string, orders []store.SceneOrder) ([]model.Scene, error) {
	if m.ReorderScenesFn != nil {
		return m.ReorderScenesFn(ctx, campaignID, orders)
	}
	return nil, nil
}

func (m *mockStore) DeleteScene(ctx context.Context, sceneID string) error {
	if m.DeleteSceneFn != nil {
		return m.DeleteSceneFn(ctx, sceneID)
	}
	return nil
}

func (m *mockStore) NPCsByCampaign(ctx context.Context, campaignID string) ([]model.NPC, error) {
	if m.NPCsByCampaignFn != nil {
		return m.NPCsByCampaignFn(ctx, campaignID)
	}
	return nil, nil
}

func (m *mockStore) NPC(ctx context.Context, id string) (model.NPC, error) {
	if m.NPCFn != nil {
		return m.NPCFn(ctx, id)
	}
	return model.NPC{}, nil
}

func (m *mockStore) CreateNPC(ctx context.Context, npc model.NPC) (model.NPC, error) {
	if m.CreateNPCFn != nil {
		return m.CreateNPCFn(ctx, npc)
	}
	return npc, nil
}

func (m *mockStore) UpdateNPC(ctx context.Context, npc model.NPC) (model.NPC, error) {
	if m.UpdateNPCFn != nil {
		return m.UpdateNPCFn(ctx, npc)
	}
	return npc, nil
}

func (m *mockStore) DeleteNPC(ctx context.Context, id string) error {
	if m.DeleteNPCFn != nil {
		return m.DeleteNPCFn(ctx, id)
	}
	return nil
}

func (m *mockStore) QuestsByCampaign(ctx context.Context, campaignID string) ([]model.Quest, error) {
	if m.QuestsByCampaignFn != nil {
		return m.QuestsByCampaignFn(ctx, campaignID)
	}
	return nil, nil
}

func (m *mockStore) Quest(ctx context.Context, id string) (model.Quest, error) {
	if m.QuestFn != nil {
		return m.QuestFn(ctx, id)
	}
	return model.Quest{}, nil
}

func (m *mockStore) CreateQuest(ctx context.Context, quest model.Quest) (model.Quest, error) {
	if m.CreateQuestFn != nil {
		return m.CreateQuestFn(ctx, quest)
	}
	return quest, nil
}

func (m *mockStore) UpdateQuest(ctx context.Context, quest model.Quest) (model.Quest, error) {
	if m.UpdateQuestFn != nil {
		return m.UpdateQuestFn(ctx, quest)
	}
	return quest, nil
}

func (m *mockStore) DeleteQuest(ctx context.Context, id string) error {
	if m.DeleteQuestFn != nil {
		return m.DeleteQuestFn(ctx, id)
	}
	return nil
}

func (m *mockStore) GlobalVariables(ctx context.Context, campaignID string) ([]model.Variable, error) {
	if m.GlobalVariablesFn != nil {
		return m.GlobalVariablesFn(ctx, campaignID)
	}
	return nil, nil
}

func (m *mockStore) CreateGlobalVariable(ctx context.Context, campaignID string, v model.Variable) (model.Variable, error) {
	if m.CreateGlobalVariableFn != nil {
		return m.CreateGlobalVariableFn(ctx, campaignID, v)
	}
	return v, nil
}

func (m *mockStore) UpdateGlobalVariable(ctx context.Context, variableID string, value any) (model.Variable, error) {
	if m.UpdateGlobalVariableFn != nil {
		return m.UpdateGlobalVariableFn(ctx, variableID, value)
	}
	return model.Variable{ID: variableID, Value: value}, nil
}

func (m *mockStore) DeleteGlobalVariable(ctx context.Context, variableID string) error {
	if m.DeleteGlobalVariableFn != nil {
		return m.DeleteGlobalVariableFn(ctx, variableID)
	}
	return nil
}

func (m *mockStore) LocalVariables(ctx context.Context, sceneID string) ([]model.Variable, error) {
	if m.LocalVariablesFn != nil {
		return m.LocalVariablesFn(ctx, sceneID)
	}
	return nil, nil
}

func (m *mockStore) CreateLocalVariable(ctx context.Context, sceneID string, v model.Variable) (model.Variable, error) {
	if m.CreateLocalVariableFn != nil {
		return m.CreateLocalVariableFn(ctx, sceneID, v)
	}
	return v, nil
}

func (m *mockStore) UpdateLocalVariable(ctx context.Context, variableID string, value any) (model.Variable, error) {
	if m.UpdateLocalVariableFn != nil {
		return m.UpdateLocalVariableFn(ctx, variableID, value)
	}
	return model.Variable{ID: variableID, Value: value}, nil
}

func (m *mockStore) DeleteLocalVariable(ctx context.Context, variableID string) error {
	if m.DeleteLocalVariableFn != nil {
		return m.DeleteLocalVariableFn(ctx, variableID)
	}
	return nil
}

func (m *mockStore) Close() error { return nil }
