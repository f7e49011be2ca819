package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorewright/lorewright/internal/assist"
)

func assistFail(c *gin.Context, action string, err error) {
	log.Printf("Failed to %s: %v", action, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

func (s *Server) AssistDialogue(c *gin.Context) {
	var req assist.DialogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Speaker == "" {
		req.Speaker = "NPC"
	}
	dialogue, err := s.Assist.GenerateDialogue(c.Request.Context(), req)
	if err != nil {
		assistFail(c, "generate dialogue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dialogue": dialogue})
}

func (s *Server) AssistNPC(c *gin.Context) {
	var req assist.NPCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NPC name is required"})
		return
	}
	profile, err := s.Assist.GenerateNPCProfile(c.Request.Context(), req)
	if err != nil {
		assistFail(c, "generate NPC profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) AssistBranches(c *gin.Context) {
	var req assist.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.CurrentScene == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current scene description is required"})
		return
	}
	branches, err := s.Assist.SuggestBranches(c.Request.Context(), req)
	if err != nil {
		assistFail(c, "suggest branches", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

func (s *Server) AssistQuestHook(c *gin.Context) {
	var req assist.QuestHookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	hook, err := s.Assist.GenerateQuestHook(c.Request.Context(), req)
	if err != nil {
		assistFail(c, "generate quest hook", err)
		return
	}
	c.JSON(http.StatusOK, hook)
}

func (s *Server) AssistAnalyze(c *gin.Context) {
	var req assist.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.CampaignName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign name is required"})
		return
	}
	analysis, err := s.Assist.AnalyzeCampaign(c.Request.Context(), req)
	if err != nil {
		assistFail(c, "analyze campaign", err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
