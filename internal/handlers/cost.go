package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/middleware"
	"github.com/luowei/planboard/backend/internal/services"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type CostHandler struct {
	costService *services.CostService
}

func NewCostHandler(db *gorm.DB) *CostHandler {
	return &CostHandler{
		costService: services.NewCostService(db),
	}
}

// List returns cost entries, optionally filtered by project
// GET /api/costs?project_id=
func (h *CostHandler) List(c *gin.Context) {
	costs, err := h.costService.List(c.Query("project_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, costs)
}

// Create records a cost entry
// POST /api/costs
func (h *CostHandler) Create(c *gin.Context) {
	var req services.CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cost, err := h.costService.Create(&req, middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, cost)
}

// Delete removes a cost entry
// DELETE /api/costs/:id
func (h *CostHandler) Delete(c *gin.Context) {
	if err := h.costService.Delete(c.Param("id"), middleware.GetActor(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "cost deleted"})
}
