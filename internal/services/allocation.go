package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type AllocationService struct {
	db *gorm.DB
}

func NewAllocationService(db *gorm.DB) *AllocationService {
	return &AllocationService{db: db}
}

type AllocationRequest struct {
	ResourceID     string    `json:"resource_id" binding:"required"`
	ProjectID      string    `json:"project_id" binding:"required"`
	TaskID         string    `json:"task_id"`
	AllocatedHours float64   `json:"allocated_hours" binding:"required"`
	AllocationDate time.Time `json:"allocation_date" binding:"required"`
}

func (s *AllocationService) Create(req *AllocationRequest, actor authz.Actor) (*models.ResourceAllocation, error) {
	if !authz.Can(actor.Role, authz.ActionAllocationCreate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	allocation := models.ResourceAllocation{
		ID:             uuid.NewString(),
		ResourceID:     req.ResourceID,
		ProjectID:      req.ProjectID,
		TaskID:         req.TaskID,
		AllocatedHours: req.AllocatedHours,
		AllocationDate: req.AllocationDate,
	}

	if err := s.db.Create(&allocation).Error; err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (s *AllocationService) List(projectID string) ([]models.ResourceAllocation, error) {
	query := s.db.Model(&models.ResourceAllocation{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var allocations []models.ResourceAllocation
	if err := query.Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}
