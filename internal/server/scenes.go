package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorewright/lorewright/internal/graph"
	"github.com/lorewright/lorewright/internal/store"
)

type sceneRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) ListScenes(c *gin.Context) {
	scenes, err := s.Store.ScenesByCampaign(c.Request.Context(), c.Param("campaignId"))
	if err != nil {
		fail(c, "fetch scenes", err)
		return
	}
	c.JSON(http.StatusOK, scenes)
}

func (s *Server) CreateScene(c *gin.Context) {
	var req sceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scene name required"})
		return
	}
	scene, err := s.Store.CreateScene(c.Request.Context(), c.Param("campaignId"), req.Name, req.Description)
	if err != nil {
		fail(c, "create scene", err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (s *Server) GetScene(c *gin.Context) {
	scene, err := s.Store.Scene(c.Request.Context(), c.Param("sceneId"))
	if err != nil {
		fail(c, "fetch scene", err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (s *Server) UpdateScene(c *gin.Context) {
	var req sceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	scene, err := s.Store.UpdateScene(c.Request.Context(), c.Param("sceneId"), req.Name, req.Description)
	if err != nil {
		fail(c, "update scene", err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

type saveGraphRequest struct {
	Nodes    []graph.Node    `json:"nodes"`
	Edges    []graph.Edge    `json:"edges"`
	Viewport *graph.Viewport `json:"viewport"`
}

func (s *Server) SaveSceneGraph(c *gin.Context) {
	var req saveGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Nodes == nil {
		req.Nodes = []graph.Node{}
	}
	if req.Edges == nil {
		req.Edges = []graph.Edge{}
	}
	g := graph.SceneGraph{Nodes: req.Nodes, Edges: req.Edges, Viewport: req.Viewport}
	if err := graph.Validate(g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Store.SaveSceneGraph(c.Request.Context(), c.Param("sceneId"), g); err != nil {
		fail(c, "save graph", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) DuplicateScene(c *gin.Context) {
	var req sceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	scene, err := s.Store.DuplicateScene(c.Request.Context(), c.Param("sceneId"), req.Name)
	if err != nil {
		fail(c, "duplicate scene", err)
		return
	}
	c.JSON(http.StatusOK, scene)
}

type reorderRequest struct {
	SceneOrders []store.SceneOrder `json:"sceneOrders"`
}

func (s *Server) ReorderScenes(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SceneOrders == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Scene orders array required"})
		return
	}
	scenes, err := s.Store.ReorderScenes(c.Request.Context(), c.Param("campaignId"), req.SceneOrders)
	if err != nil {
		fail(c, "reorder scenes", err)
		return
	}
	c.JSON(http.StatusOK, scenes)
}

func (s *Server) DeleteScene(c *gin.Context) {
	if err := s.Store.DeleteScene(c.Request.Context(), c.Param("sceneId")); err != nil {
		fail(c, "delete scene", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scene deleted"})
}
