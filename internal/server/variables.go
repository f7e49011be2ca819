package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorewright/lorewright/internal/model"
	"github.com/lorewright/lorewright/internal/store"
)

type createVariableRequest struct {
	Name        string             `json:"name"`
	Type        model.VariableType `json:"type"`
	Value       any                `json:"value"`
	Description string             `json:"description"`
}

type updateVariableRequest struct {
	Value any `json:"value"`
}

// createVariable enforces name uniqueness per owner scope: creation is
// rejected when a variable of the same name already exists for that owner.
func createVariable(c *gin.Context,
	create func(model.Variable) (model.Variable, error)) {
	var req createVariableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Name == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and type required"})
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown variable type"})
		return
	}
	v := model.Variable{
		Name:        req.Name,
		Type:        req.Type,
		Value:       req.Value,
		Description: req.Description,
	}
	created, err := create(v)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Variable already exists"})
			return
		}
		fail(c, "create variable", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (s *Server) ListGlobalVariables(c *gin.Context) {
	vars, err := s.Store.GlobalVariables(c.Request.Context(), c.Param("campaignId"))
	if err != nil {
		fail(c, "fetch variables", err)
		return
	}
	c.JSON(http.StatusOK, vars)
}

func (s *Server) CreateGlobalVariable(c *gin.Context) {
	createVariable(c, func(v model.Variable) (model.Variable, error) {
		return s.Store.CreateGlobalVariable(c.Request.Context(), c.Param("campaignId"), v)
	})
}

func (s *Server) UpdateGlobalVariable(c *gin.Context) {
	var req updateVariableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	v, err := s.Store.UpdateGlobalVariable(c.Request.Context(), c.Param("variableId"), req.Value)
	if err != nil {
		fail(c, "update variable", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) DeleteGlobalVariable(c *gin.Context) {
	if err := s.Store.DeleteGlobalVariable(c.Request.Context(), c.Param("variableId")); err != nil {
		fail(c, "delete variable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variable deleted"})
}

func (s *Server) ListLocalVariables(c *gin.Context) {
	vars, err := s.Store.LocalVariables(c.Request.Context(), c.Param("sceneId"))
	if err != nil {
		fail(c, "fetch variables", err)
		return
	}
	c.JSON(http.StatusOK, vars)
}

func (s *Server) CreateLocalVariable(c *gin.Context) {
	createVariable(c, func(v model.Variable) (model.Variable, error) {
		return s.Store.CreateLocalVariable(c.Request.Context(), c.Param("sceneId"), v)
	})
}

func (s *Server) UpdateLocalVariable(c *gin.Context) {
	var req updateVariableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	v, err := s.Store.UpdateLocalVariable(c.Request.Context(), c.Param("variableId"), req.Value)
	if err != nil {
		fail(c, "update variable", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) DeleteLocalVariable(c *gin.Context) {
	if err := s.Store.DeleteLocalVariable(c.Request.Context(), c.Param("variableId")); err != nil {
		fail(c, "delete variable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variable deleted"})
}
