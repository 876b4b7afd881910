package services

import (
	"math"

	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalProjects  int64   `json:"total_projects"`
	ActiveProjects int64   `json:"active_projects"`
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

// GetStats aggregates project and task counts. Team members see the same
// scoped slice as project/task listing: their tasks, and the projects those
// tasks belong to.
func (s *DashboardService) GetStats(actor authz.Actor) (*DashboardStats, error) {
	var tasks []models.Task
	var projects []models.Project

	if actor.ScopedVisibility() {
		if err := s.db.Where("assigned_to_user_id = ?", actor.UserID).Find(&tasks).Error; err != nil {
			return nil, err
		}

		seen := make(map[string]bool)
		var projectIDs []string
		for _, t := range tasks {
			if !seen[t.ProjectID] {
				seen[t.ProjectID] = true
				projectIDs = append(projectIDs, t.ProjectID)
			}
		}

		if len(projectIDs) > 0 {
			if err := s.db.Where("id IN ?", projectIDs).Find(&projects).Error; err != nil {
				return nil, err
			}
		}
	} else {
		if err := s.db.Find(&projects).Error; err != nil {
			return nil, err
		}
		if err := s.db.Find(&tasks).Error; err != nil {
			return nil, err
		}
	}

	stats := &DashboardStats{
		TotalProjects: int64(len(projects)),
		TotalTasks:    int64(len(tasks)),
	}
	for _, p := range projects {
		if p.Status == "active" {
			stats.ActiveProjects++
		}
	}
	for _, t := range tasks {
		if t.Status == "completed" {
			stats.CompletedTasks++
		}
	}

	if stats.TotalTasks > 0 {
		rate := float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}

	return stats, nil
}
