package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/middleware"
	"github.com/luowei/planboard/backend/internal/services"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(db *gorm.DB) *DocumentHandler {
	return &DocumentHandler{
		documentService: services.NewDocumentService(db),
	}
}

// List returns document records, optionally filtered by project and category
// GET /api/documents?project_id=&category=
func (h *DocumentHandler) List(c *gin.Context) {
	documents, err := h.documentService.List(c.Query("project_id"), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, documents)
}

// Create registers a document record
// POST /api/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	var req services.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	document, err := h.documentService.Create(&req, middleware.GetActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, document)
}

// Delete removes a document record
// DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documentService.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "document deleted"})
}
