package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorewright/lorewright/internal/assist"
	"github.com/lorewright/lorewright/internal/graph"
	"github.com/lorewright/lorewright/internal/model"
	"github.com/lorewright/lorewright/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubLLM struct {
	response string
	prompts  []string
}

func (s *stubLLM) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, nil
}

func newTestServer(st store.Store, llmResponse string) (*Server, *stubLLM) {
	llm := &stubLLM{response: llmResponse}
	return &Server{Store: st, Assist: assist.NewService(llm)}, llm
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateCampaign(t *testing.T) {
	st := &mockStore{
		CreateCampaignFn: func(_ context.Context, name, description string) (model.Campaign, error) {
			return model.Campaign{ID: "c1", Name: name, Description: description}, nil
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPost, "/campaigns", gin.H{"name": "Crown of Ash", "description": "intrigue"})
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Campaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, "Crown of Ash", got.Name)
}

func TestCreateCampaignRequiresName(t *testing.T) {
	s, _ := newTestServer(&mockStore{}, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPost, "/campaigns", gin.H{"description": "nameless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCampaignNotFound(t *testing.T) {
	st := &mockStore{
		CampaignFn: func(_ context.Context, _ string) (model.Campaign, error) {
			return model.Campaign{}, store.ErrNotFound
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodGet, "/campaigns/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStoreErrorIsOpaque500(t *testing.T) {
	st := &mockStore{
		CampaignsFn: func(_ context.Context) ([]model.Campaign, error) {
			return nil, fmt.Errorf("pq: connection refused")
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodGet, "/campaigns", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestSaveSceneGraph(t *testing.T) {
	var savedID string
	var saved graph.SceneGraph
	st := &mockStore{
		SaveSceneGraphFn: func(_ context.Context, sceneID string, g graph.SceneGraph) error {
			savedID = sceneID
			saved = g
			return nil
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	body := gin.H{
		"nodes": []gin.H{
			{"id": "n1", "type": "start", "position": gin.H{"x": 0, "y": 0}, "data": gin.H{"type": "start", "label": "Start"}},
			{"id": "n2", "type": "dialogue", "position": gin.H{"x": 200, "y": 0}, "data": gin.H{"type": "dialogue", "label": "Greet", "speaker": "Elara", "text": "Hail."}},
		},
		"edges":    []gin.H{{"id": "e1", "source": "n1", "target": "n2"}},
		"viewport": gin.H{"x": 0, "y": 0, "zoom": 1.5},
	}
	w := doJSON(router, http.MethodPut, "/scenes/scene-1/graph", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "scene-1", savedID)
	require.Len(t, saved.Nodes, 2)
	d, ok := saved.Nodes[1].Data.(*graph.DialogueData)
	require.True(t, ok)
	assert.Equal(t, "Elara", d.Speaker)
	require.NotNil(t, saved.Viewport)
	assert.Equal(t, 1.5, saved.Viewport.Zoom)
}

func TestSaveSceneGraphRejectsDanglingEdge(t *testing.T) {
	s, _ := newTestServer(&mockStore{}, "")
	router := s.SetupRouter()

	body := gin.H{
		"nodes": []gin.H{
			{"id": "n1", "type": "start", "position": gin.H{"x": 0, "y": 0}, "data": gin.H{"type": "start"}},
		},
		"edges": []gin.H{{"id": "e1", "source": "n1", "target": "missing"}},
	}
	w := doJSON(router, http.MethodPut, "/scenes/scene-1/graph", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveSceneGraphEmptyBodyDefaults(t *testing.T) {
	var saved graph.SceneGraph
	st := &mockStore{
		SaveSceneGraphFn: func(_ context.Context, _ string, g graph.SceneGraph) error {
			saved = g
			return nil
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPut, "/scenes/scene-1/graph", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, saved.Nodes)
	assert.NotNil(t, saved.Edges)
}

func TestReorderScenesRequiresArray(t *testing.T) {
	s, _ := newTestServer(&mockStore{}, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPut, "/campaigns/c1/scenes/reorder", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReorderScenes(t *testing.T) {
	var gotOrders []store.SceneOrder
	st := &mockStore{
		ReorderScenesFn: func(_ context.Context, _ string, orders []store.SceneOrder) ([]model.Scene, error) {
			gotOrders = orders
			return []model.Scene{{ID: "s2", Order: 0}, {ID: "s1", Order: 1}}, nil
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	body := gin.H{"sceneOrders": []gin.H{{"sceneId": "s2", "order": 0}, {"sceneId": "s1", "order": 1}}}
	w := doJSON(router, http.MethodPut, "/campaigns/c1/scenes/reorder", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, gotOrders, 2)
	assert.Equal(t, "s2", gotOrders[0].SceneID)
}

func TestCreateVariableDuplicate(t *testing.T) {
	st := &mockStore{
		CreateGlobalVariableFn: func(_ context.Context, _ string, _ model.Variable) (model.Variable, error) {
			return model.Variable{}, store.ErrDuplicateName
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	body := gin.H{"name": "reputation", "type": "NUMBER", "value": 0}
	w := doJSON(router, http.MethodPost, "/campaigns/c1/variables", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Variable already exists")
}

func TestCreateVariableRequiresNameAndType(t *testing.T) {
	s, _ := newTestServer(&mockStore{}, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPost, "/scenes/s1/variables", gin.H{"name": "hp"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/scenes/s1/variables", gin.H{"type": "NUMBER"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVariableRejectsUnknownType(t *testing.T) {
	s, _ := newTestServer(&mockStore{}, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPost, "/scenes/s1/variables", gin.H{"name": "hp", "type": "DECIMAL"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateLocalVariable(t *testing.T) {
	var gotSceneID string
	st := &mockStore{
		CreateLocalVariableFn: func(_ context.Context, sceneID string, v model.Variable) (model.Variable, error) {
			gotSceneID = sceneID
			v.ID = "v1"
			return v, nil
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	body := gin.H{"name": "hp", "type": "NUMBER", "value": 20}
	w := doJSON(router, http.MethodPost, "/scenes/scene-1/variables", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "scene-1", gotSceneID)

	var got model.Variable
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "v1", got.ID)
	assert.Equal(t, model.VariableNumber, got.Type)
}

func TestUpdateVariableValue(t *testing.T) {
	st := &mockStore{
		UpdateGlobalVariableFn: func(_ context.Context, variableID string, value any) (model.Variable, error) {
			return model.Variable{ID: variableID, Name: "reputation", Type: model.VariableNumber, Value: value}, nil
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPut, "/variables/global/v1", gin.H{"value": 42})
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Variable
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(42), got.Value)
}

func TestAssistDialogueDefaultsSpeaker(t *testing.T) {
	s, llm := newTestServer(&mockStore{}, "Halt, who goes there?")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPost, "/assist/dialogue", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Halt, who goes there?")
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Speaker: NPC")
}

func TestAssistBranchesRequiresScene(t *testing.T) {
	s, _ := newTestServer(&mockStore{}, "1. Something happens")
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPost, "/assist/branches", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/assist/branches", gin.H{"currentScene": "Tavern brawl"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Something happens")
}

func TestAssistNPCRequiresName(t *testing.T) {
	s, _ := newTestServer(&mockStore{}, `{"personality": "Gruff"}`)
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPost, "/assist/npc", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/assist/npc", gin.H{"name": "Borin"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gruff")
}

func TestAssistAnalyzeRequiresCampaignName(t *testing.T) {
	s, _ := newTestServer(&mockStore{}, `{"summary": "Solid"}`)
	router := s.SetupRouter()

	w := doJSON(router, http.MethodPost, "/assist/analyze", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateQuestBuildsObjectives(t *testing.T) {
	st := &mockStore{
		CreateQuestFn: func(_ context.Context, quest model.Quest) (model.Quest, error) {
			quest.ID = "q1"
			return quest, nil
		},
	}
	s, _ := newTestServer(st, "")
	router := s.SetupRouter()

	body := gin.H{"name": "The Sunken Bell", "objectives": []string{"Find the chapel", "Silence the bell"}}
	w := doJSON(router, http.MethodPost, "/campaigns/c1/quests", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.Quest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Objectives, 2)
	assert.NotEmpty(t, got.Objectives[0].ID)
	assert.False(t, got.Objectives[0].Completed)
	assert.Equal(t, model.QuestNotStarted, got.Status)
}
