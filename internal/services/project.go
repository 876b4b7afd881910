package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ProjectRequest carries the mutable project fields. Create and update share
// it: an update replaces every mutable field with the submitted value.
type ProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"omitempty,oneof=active completed on_hold"`
	Budget      float64    `json:"budget"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// Create creates a project owned by the actor.
func (s *ProjectService) Create(req *ProjectRequest, actor authz.Actor) (*models.Project, error) {
	if !authz.Can(actor.Role, authz.ActionProjectCreate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	now := time.Now().UTC()
	project := models.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		OwnerID:     actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns projects visible to the actor. Team members only see
// projects that contain at least one task assigned to them.
func (s *ProjectService) List(actor authz.Actor) ([]models.Project, error) {
	var projects []models.Project

	if actor.ScopedVisibility() {
		projectIDs, err := s.assignedProjectIDs(actor.UserID)
		if err != nil {
			return nil, err
		}
		if len(projectIDs) == 0 {
			return []models.Project{}, nil
		}
		if err := s.db.Where("id IN ?", projectIDs).Find(&projects).Error; err != nil {
			return nil, err
		}
		return projects, nil
	}

	if err := s.db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// assignedProjectIDs collects the distinct project ids of the user's tasks.
func (s *ProjectService) assignedProjectIDs(userID string) ([]string, error) {
	var ids []string
	err := s.db.Model(&models.Task{}).
		Where("assigned_to_user_id = ?", userID).
		Distinct("project_id").
		Pluck("project_id", &ids).Error
	return ids, err
}

func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Update replaces the mutable fields and refreshes updated_at.
func (s *ProjectService) Update(id string, req *ProjectRequest, actor authz.Actor) (*models.Project, error) {
	if !authz.Can(actor.Role, authz.ActionProjectUpdate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"status":      status,
		"budget":      req.Budget,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
		"updated_at":  time.Now().UTC(),
	}
	if err := s.db.Model(project).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete removes a project. Tasks and other records referencing it are left
// in place; nothing cascades.
func (s *ProjectService) Delete(id string, actor authz.Actor) error {
	if !authz.Can(actor.Role, authz.ActionProjectDelete) {
		return response.NewForbidden("insufficient permissions")
	}

	result := s.db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("project not found")
	}
	return nil
}
