package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type ResourceService struct {
	db *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{db: db}
}

type ResourceRequest struct {
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=person equipment software"`
	Availability string  `json:"availability"`
	CostPerHour  float64 `json:"cost_per_hour"`
}

func (s *ResourceService) Create(req *ResourceRequest, actor authz.Actor) (*models.Resource, error) {
	if !authz.Can(actor.Role, authz.ActionResourceCreate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	availability := req.Availability
	if availability == "" {
		availability = "available"
	}

	resource := models.Resource{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Type:         req.Type,
		Availability: availability,
		CostPerHour:  req.CostPerHour,
	}

	if err := s.db.Create(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// List returns all resources. Reads are open to every role.
func (s *ResourceService) List() ([]models.Resource, error) {
	var resources []models.Resource
	if err := s.db.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *ResourceService) Update(id string, req *ResourceRequest, actor authz.Actor) (*models.Resource, error) {
	if !authz.Can(actor.Role, authz.ActionResourceUpdate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	var resource models.Resource
	if err := s.db.Where("id = ?", id).First(&resource).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("resource not found")
		}
		return nil, err
	}

	availability := req.Availability
	if availability == "" {
		availability = "available"
	}

	updates := map[string]interface{}{
		"name":          req.Name,
		"type":          req.Type,
		"availability":  availability,
		"cost_per_hour": req.CostPerHour,
	}
	if err := s.db.Model(&resource).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.db.Where("id = ?", id).First(&resource)
	return &resource, nil
}

// Delete removes a resource. Admin only; project managers may create and
// edit resources but not destroy them.
func (s *ResourceService) Delete(id string, actor authz.Actor) error {
	if !authz.Can(actor.Role, authz.ActionResourceDelete) {
		return response.NewForbidden("admin access required")
	}

	result := s.db.Where("id = ?", id).Delete(&models.Resource{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("resource not found")
	}
	return nil
}
