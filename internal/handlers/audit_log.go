package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/services"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type AuditLogHandler struct {
	auditLogService *services.AuditLogService
}

func NewAuditLogHandler(db *gorm.DB) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogService: services.NewAuditLogService(db),
	}
}

// List returns audit log entries with pagination and filters
// GET /api/audit-logs?page=&page_size=&level=&module=&user_id=
func (h *AuditLogHandler) List(c *gin.Context) {
	var req services.AuditLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.auditLogService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}
