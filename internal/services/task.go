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

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// TaskRequest carries the mutable task fields, shared by create and update.
// The frozen flag is not here: only baseline creation can set it.
type TaskRequest struct {
	Name             string     `json:"name" binding:"required"`
	Description      string     `json:"description"`
	ProjectID        string     `json:"project_id" binding:"required"`
	AssignedToUserID string     `json:"assigned_to_user_id"`
	Status           string     `json:"status" binding:"omitempty,oneof=todo in_progress completed"`
	Priority         string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
}

func (s *TaskService) Create(req *TaskRequest, actor authz.Actor) (*models.Task, error) {
	if !authz.Can(actor.Role, authz.ActionTaskCreate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	status := req.Status
	if status == "" {
		status = "todo"
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		ProjectID:        req.ProjectID,
		AssignedToUserID: req.AssignedToUserID,
		Status:           status,
		Priority:         priority,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns tasks, optionally filtered by project. Team members always
// get only their own tasks, whatever project filter they asked for.
func (s *TaskService) List(projectID string, actor authz.Actor) ([]models.Task, error) {
	query := s.db.Model(&models.Task{})

	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if actor.ScopedVisibility() {
		query = query.Where("assigned_to_user_id = ?", actor.UserID)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetByID(id string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("task not found")
		}
		return nil, err
	}
	return &task, nil
}

// Update replaces the mutable fields. A frozen task rejects team-member
// updates; project managers and admins are unaffected by the flag.
func (s *TaskService) Update(id string, req *TaskRequest, actor authz.Actor) (*models.Task, error) {
	if !authz.Can(actor.Role, authz.ActionTaskUpdate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if task.IsFrozen && actor.Role == authz.RoleTeamMember {
		return nil, response.NewFrozen("cannot edit frozen task")
	}

	status := req.Status
	if status == "" {
		status = "todo"
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	updates := map[string]interface{}{
		"name":                req.Name,
		"description":         req.Description,
		"project_id":          req.ProjectID,
		"assigned_to_user_id": req.AssignedToUserID,
		"status":              status,
		"priority":            priority,
		"start_date":          req.StartDate,
		"end_date":            req.EndDate,
		"updated_at":          time.Now().UTC(),
	}
	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

func (s *TaskService) Delete(id string, actor authz.Actor) error {
	if !authz.Can(actor.Role, authz.ActionTaskDelete) {
		return response.NewForbidden("insufficient permissions")
	}

	result := s.db.Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("task not found")
	}
	return nil
}
