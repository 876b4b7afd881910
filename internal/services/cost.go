package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type CostService struct {
	db *gorm.DB
}

func NewCostService(db *gorm.DB) *CostService {
	return &CostService{db: db}
}

type CostRequest struct {
	ProjectID   string    `json:"project_id" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Amount      float64   `json:"amount" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description"`
}

func (s *CostService) Create(req *CostRequest, actor authz.Actor) (*models.Cost, error) {
	if !authz.Can(actor.Role, authz.ActionCostCreate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	cost := models.Cost{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}

	if err := s.db.Create(&cost).Error; err != nil {
		return nil, err
	}
	return &cost, nil
}

func (s *CostService) List(projectID string) ([]models.Cost, error) {
	query := s.db.Model(&models.Cost{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var costs []models.Cost
	if err := query.Find(&costs).Error; err != nil {
		return nil, err
	}
	return costs, nil
}

func (s *CostService) Delete(id string, actor authz.Actor) error {
	if !authz.Can(actor.Role, authz.ActionCostDelete) {
		return response.NewForbidden("insufficient permissions")
	}

	result := s.db.Where("id = ?", id).Delete(&models.Cost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("cost not found")
	}
	return nil
}
