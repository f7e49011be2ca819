package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorewright/lorewright/internal/store"
)

// fail converts a store error to display state: 404 for missing entities,
// 500 otherwise. Errors never propagate past the call site.
func fail(c *gin.Context, action string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	log.Printf("Failed to %s: %v", action, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

type campaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) ListCampaigns(c *gin.Context) {
	campaigns, err := s.Store.Campaigns(c.Request.Context())
	if err != nil {
		fail(c, "fetch campaigns", err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

func (s *Server) CreateCampaign(c *gin.Context) {
	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campaign name required"})
		return
	}
	campaign, err := s.Store.CreateCampaign(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		fail(c, "create campaign", err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (s *Server) GetCampaign(c *gin.Context) {
	campaign, err := s.Store.Campaign(c.Request.Context(), c.Param("campaignId"))
	if err != nil {
		fail(c, "fetch campaign", err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (s *Server) UpdateCampaign(c *gin.Context) {
	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	campaign, err := s.Store.UpdateCampaign(c.Request.Context(), c.Param("campaignId"), req.Name, req.Description)
	if err != nil {
		fail(c, "update campaign", err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (s *Server) DeleteCampaign(c *gin.Context) {
	if err := s.Store.DeleteCampaign(c.Request.Context(), c.Param("campaignId")); err != nil {
		fail(c, "delete campaign", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
}
