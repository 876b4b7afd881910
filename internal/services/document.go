package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

// DocumentService tracks file metadata. Document operations carry no role
// restriction: every authenticated user may attach and remove documents.
type DocumentService struct {
	db *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db}
}

type DocumentRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Category  string `json:"category" binding:"required,oneof=project-documents images relationships"`
	Filename  string `json:"filename" binding:"required"`
	FilePath  string `json:"file_path" binding:"required"`
}

func (s *DocumentService) Create(req *DocumentRequest, actor authz.Actor) (*models.Document, error) {
	document := models.Document{
		ID:               uuid.NewString(),
		ProjectID:        req.ProjectID,
		Category:         req.Category,
		Filename:         req.Filename,
		FilePath:         req.FilePath,
		UploadedByUserID: actor.UserID,
		UploadDate:       time.Now().UTC(),
	}

	if err := s.db.Create(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func (s *DocumentService) List(projectID, category string) ([]models.Document, error) {
	query := s.db.Model(&models.Document{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var documents []models.Document
	if err := query.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (s *DocumentService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("document not found")
	}
	return nil
}
