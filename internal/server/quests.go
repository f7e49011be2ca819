package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lorewright/lorewright/internal/model"
)

type createQuestRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
}

func (s *Server) ListQuests(c *gin.Context) {
	quests, err := s.Store.QuestsByCampaign(c.Request.Context(), c.Param("campaignId"))
	if err != nil {
		fail(c, "fetch quests", err)
		return
	}
	c.JSON(http.StatusOK, quests)
}

func (s *Server) CreateQuest(c *gin.Context) {
	var req createQuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quest name required"})
		return
	}
	objectives := make([]model.QuestObjective, 0, len(req.Objectives))
	for _, text := range req.Objectives {
		objectives = append(objectives, model.QuestObjective{ID: uuid.New().String(), Text: text})
	}
	quest := model.Quest{
		Name:        req.Name,
		Description: req.Description,
		Objectives:  objectives,
		Status:      model.QuestNotStarted,
		CampaignID:  c.Param("campaignId"),
	}
	created, err := s.Store.CreateQuest(c.Request.Context(), quest)
	if err != nil {
		fail(c, "create quest", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (s *Server) GetQuest(c *gin.Context) {
	quest, err := s.Store.Quest(c.Request.Context(), c.Param("questId"))
	if err != nil {
		fail(c, "fetch quest", err)
		return
	}
	c.JSON(http.StatusOK, quest)
}

func (s *Server) UpdateQuest(c *gin.Context) {
	existing, err := s.Store.Quest(c.Request.Context(), c.Param("questId"))
	if err != nil {
		fail(c, "fetch quest", err)
		return
	}
	quest := existing
	if err := c.ShouldBindJSON(&quest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	quest.ID = existing.ID
	quest.CampaignID = existing.CampaignID
	updated, err := s.Store.UpdateQuest(c.Request.Context(), quest)
	if err != nil {
		fail(c, "update quest", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) DeleteQuest(c *gin.Context) {
	if err := s.Store.DeleteQuest(c.Request.Context(), c.Param("questId")); err != nil {
		fail(c, "delete quest", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quest deleted"})
}
