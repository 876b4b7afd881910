package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/middleware"
	"github.com/luowei/planboard/backend/internal/services"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type BaselineHandler struct {
	baselineService *services.BaselineService
}

func NewBaselineHandler(db *gorm.DB) *BaselineHandler {
	return &BaselineHandler{
		baselineService: services.NewBaselineService(db),
	}
}

// CreateProjectBaseline snapshots a project
// POST /api/baselines/project?project_id=
func (h *BaselineHandler) CreateProjectBaseline(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		response.BadRequest(c, "project_id is required")
		return
	}

	var req services.BaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	baseline, err := h.baselineService.CreateProjectBaseline(projectID, &req, middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, baseline)
}

// ListProjectBaselines returns all baselines of a project
// GET /api/baselines/project/:project_id
func (h *BaselineHandler) ListProjectBaselines(c *gin.Context) {
	baselines, err := h.baselineService.ListProjectBaselines(c.Param("project_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, baselines)
}

// CreateTaskBaseline snapshots a task and freezes it
// POST /api/baselines/task?task_id=
func (h *BaselineHandler) CreateTaskBaseline(c *gin.Context) {
	taskID := c.Query("task_id")
	if taskID == "" {
		response.BadRequest(c, "task_id is required")
		return
	}

	var req services.BaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	baseline, err := h.baselineService.CreateTaskBaseline(taskID, &req, middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, baseline)
}

// ListTaskBaselines returns all baselines of a task
// GET /api/baselines/task/:task_id
func (h *BaselineHandler) ListTaskBaselines(c *gin.Context) {
	baselines, err := h.baselineService.ListTaskBaselines(c.Param("task_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, baselines)
}
