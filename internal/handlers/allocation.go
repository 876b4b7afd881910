package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/middleware"
	"github.com/luowei/planboard/backend/internal/services"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type AllocationHandler struct {
	allocationService *services.AllocationService
}

func NewAllocationHandler(db *gorm.DB) *AllocationHandler {
	return &AllocationHandler{
		allocationService: services.NewAllocationService(db),
	}
}

// List returns resource allocations, optionally filtered by project
// GET /api/allocations?project_id=
func (h *AllocationHandler) List(c *gin.Context) {
	allocations, err := h.allocationService.List(c.Query("project_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, allocations)
}

// Create assigns a resource to a project
// POST /api/allocations
func (h *AllocationHandler) Create(c *gin.Context) {
	var req services.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	allocation, err := h.allocationService.Create(&req, middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, allocation)
}
