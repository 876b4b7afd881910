package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/middleware"
	"github.com/luowei/planboard/backend/internal/services"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type RelationshipHandler struct {
	relationshipService *services.RelationshipService
}

func NewRelationshipHandler(db *gorm.DB) *RelationshipHandler {
	return &RelationshipHandler{
		relationshipService: services.NewRelationshipService(db),
	}
}

// List returns entity relationships, optionally filtered by project
// GET /api/relationships?project_id=
func (h *RelationshipHandler) List(c *gin.Context) {
	relationships, err := h.relationshipService.List(c.Query("project_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, relationships)
}

// Create links two entities
// POST /api/relationships
func (h *RelationshipHandler) Create(c *gin.Context) {
	var req services.RelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	relationship, err := h.relationshipService.Create(&req, middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, relationship)
}

// Delete removes a relationship
// DELETE /api/relationships/:id
func (h *RelationshipHandler) Delete(c *gin.Context) {
	if err := h.relationshipService.Delete(c.Param("id"), middleware.GetActor(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "relationship deleted"})
}
