package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

// BaselineService takes immutable snapshots of projects and tasks. A task
// baseline is the one and only way a task becomes frozen; there is no
// reverse operation.
type BaselineService struct {
	db *gorm.DB
}

func NewBaselineService(db *gorm.DB) *BaselineService {
	return &BaselineService{db: db}
}

type BaselineRequest struct {
	Name         string         `json:"name" binding:"required"`
	SnapshotData models.JSONMap `json:"snapshot_data" binding:"required"`
}

// CreateProjectBaseline snapshots a project. It does not touch any task's
// frozen state.
func (s *BaselineService) CreateProjectBaseline(projectID string, req *BaselineRequest, actor authz.Actor) (*models.ProjectBaseline, error) {
	if !authz.Can(actor.Role, authz.ActionBaselineCreate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	baseline := models.ProjectBaseline{
		ID:             uuid.NewString(),
		Name:           req.Name,
		SnapshotData:   req.SnapshotData,
		ProjectID:      projectID,
		FrozenDate:     time.Now().UTC(),
		FrozenByUserID: actor.UserID,
	}

	if err := s.db.Create(&baseline).Error; err != nil {
		return nil, err
	}
	return &baseline, nil
}

func (s *BaselineService) ListProjectBaselines(projectID string) ([]models.ProjectBaseline, error) {
	var baselines []models.ProjectBaseline
	if err := s.db.Where("project_id = ?", projectID).Find(&baselines).Error; err != nil {
		return nil, err
	}
	return baselines, nil
}

// CreateTaskBaseline snapshots a task and marks it frozen. The flag write is
// idempotent, so repeating it after a partial failure is harmless.
func (s *BaselineService) CreateTaskBaseline(taskID string, req *BaselineRequest, actor authz.Actor) (*models.TaskBaseline, error) {
	if !authz.Can(actor.Role, authz.ActionBaselineCreate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	baseline := models.TaskBaseline{
		ID:             uuid.NewString(),
		Name:           req.Name,
		SnapshotData:   req.SnapshotData,
		TaskID:         taskID,
		FrozenDate:     time.Now().UTC(),
		FrozenByUserID: actor.UserID,
	}

	if err := s.db.Create(&baseline).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Update("is_frozen", true).Error; err != nil {
		return nil, err
	}

	return &baseline, nil
}

func (s *BaselineService) ListTaskBaselines(taskID string) ([]models.TaskBaseline, error) {
	var baselines []models.TaskBaseline
	if err := s.db.Where("task_id = ?", taskID).Find(&baselines).Error; err != nil {
		return nil, err
	}
	return baselines, nil
}
