package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorewright/lorewright/internal/model"
)

func (s *Server) ListNPCs(c *gin.Context) {
	npcs, err := s.Store.NPCsByCampaign(c.Request.Context(), c.Param("campaignId"))
	if err != nil {
		fail(c, "fetch NPCs", err)
		return
	}
	c.JSON(http.StatusOK, npcs)
}

func (s *Server) CreateNPC(c *gin.Context) {
	var npc model.NPC
	if err := c.ShouldBindJSON(&npc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if npc.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NPC name required"})
		return
	}
	npc.CampaignID = c.Param("campaignId")
	created, err := s.Store.CreateNPC(c.Request.Context(), npc)
	if err != nil {
		fail(c, "create NPC", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (s *Server) GetNPC(c *gin.Context) {
	npc, err := s.Store.NPC(c.Request.Context(), c.Param("npcId"))
	if err != nil {
		fail(c, "fetch NPC", err)
		return
	}
	c.JSON(http.StatusOK, npc)
}

func (s *Server) UpdateNPC(c *gin.Context) {
	existing, err := s.Store.NPC(c.Request.Context(), c.Param("npcId"))
	if err != nil {
		fail(c, "fetch NPC", err)
		return
	}
	npc := existing
	if err := c.ShouldBindJSON(&npc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	npc.ID = existing.ID
	npc.CampaignID = existing.CampaignID
	updated, err := s.Store.UpdateNPC(c.Request.Context(), npc)
	if err != nil {
		fail(c, "update NPC", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) DeleteNPC(c *gin.Context) {
	if err := s.Store.DeleteNPC(c.Request.Context(), c.Param("npcId")); err != nil {
		fail(c, "delete NPC", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "NPC deleted"})
}
