package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/middleware"
	"github.com/luowei/planboard/backend/internal/services"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type ResourceHandler struct {
	resourceService *services.ResourceService
}

func NewResourceHandler(db *gorm.DB) *ResourceHandler {
	return &ResourceHandler{
		resourceService: services.NewResourceService(db),
	}
}

// List returns all resources
// GET /api/resources
func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.resourceService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resources)
}

// Create creates a new resource
// POST /api/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var req services.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resource, err := h.resourceService.Create(&req, middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, resource)
}

// Update replaces a resource's mutable fields
// PUT /api/resources/:id
func (h *ResourceHandler) Update(c *gin.Context) {
	var req services.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resource, err := h.resourceService.Update(c.Param("id"), &req, middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resource)
}

// Delete deletes a resource
// DELETE /api/resources/:id
func (h *ResourceHandler) Delete(c *gin.Context) {
	if err := h.resourceService.Delete(c.Param("id"), middleware.GetActor(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "resource deleted"})
}
