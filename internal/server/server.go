package server

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lorewright/lorewright/internal/assist"
	"github.com/lorewright/lorewright/internal/config"
	"github.com/lorewright/lorewright/internal/llm"
	"github.com/lorewright/lorewright/internal/store"
)

type Server struct {
	Store  store.Store
	Assist *assist.Service
	Config *config.Config
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Override config with env vars if present
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	// Default to Ollama if provider is empty
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "gpt-oss:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}

	st, err := store.NewPostgres(cfg.Database.ConnString())
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	return &Server{
		Store:  st,
		Assist: assist.NewService(llmClient),
		Config: cfg,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/campaigns", s.ListCampaigns)
	r.POST("/campaigns", s.CreateCampaign)
	r.GET("/campaigns/:campaignId", s.GetCampaign)
	r.PUT("/campaigns/:campaignId", s.UpdateCampaign)
	r.DELETE("/campaigns/:campaignId", s.DeleteCampaign)

	r.GET("/campaigns/:campaignId/scenes", s.ListScenes)
	r.POST("/campaigns/:campaignId/scenes", s.CreateScene)
	r.PUT("/campaigns/:campaignId/scenes/reorder", s.ReorderScenes)
	r.GET("/scenes/:sceneId", s.GetScene)
	r.PUT("/scenes/:sceneId", s.UpdateScene)
	r.PUT("/scenes/:sceneId/graph", s.SaveSceneGraph)
	r.POST("/scenes/:sceneId/duplicate", s.DuplicateScene)
	r.DELETE("/scenes/:sceneId", s.DeleteScene)

	r.GET("/campaigns/:campaignId/npcs", s.ListNPCs)
	r.POST("/campaigns/:campaignId/npcs", s.CreateNPC)
	r.GET("/npcs/:npcId", s.GetNPC)
	r.PUT("/npcs/:npcId", s.UpdateNPC)
	r.DELETE("/npcs/:npcId", s.DeleteNPC)

	r.GET("/campaigns/:campaignId/quests", s.ListQuests)
	r.POST("/campaigns/:campaignId/quests", s.CreateQuest)
	r.GET("/quests/:questId", s.GetQuest)
	r.PUT("/quests/:questId", s.UpdateQuest)
	r.DELETE("/quests/:questId", s.DeleteQuest)

	r.GET("/campaigns/:campaignId/variables", s.ListGlobalVariables)
	r.POST("/campaigns/:campaignId/variables", s.CreateGlobalVariable)
	r.PUT("/variables/global/:variableId", s.UpdateGlobalVariable)
	r.DELETE("/variables/global/:variableId", s.DeleteGlobalVariable)
	r.GET("/scenes/:sceneId/variables", s.ListLocalVariables)
	r.POST("/scenes/:sceneId/variables", s.CreateLocalVariable)
	r.PUT("/variables/local/:variableId", s.UpdateLocalVariable)
	r.DELETE("/variables/local/:variableId", s.DeleteLocalVariable)

	r.POST("/assist/dialogue", s.AssistDialogue)
	r.POST("/assist/npc", s.AssistNPC)
	r.POST("/assist/branches", s.AssistBranches)
	r.POST("/assist/quest-hook", s.AssistQuestHook)
	r.POST("/assist/analyze", s.AssistAnalyze)

	return r
}
