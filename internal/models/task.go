package models

import "time"

// Task belongs to a project and may be assigned to a user. IsFrozen flips to
// true when a task baseline is taken and never flips back.
type Task struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	Name             string     `gorm:"size:200;not null" json:"name"`
	Description      string     `gorm:"type:text" json:"description"`
	ProjectID        string     `gorm:"size:36;index;not null" json:"project_id"`
	AssignedToUserID string     `gorm:"size:36;index" json:"assigned_to_user_id"`
	Status           string     `gorm:"size:50;default:todo" json:"status"`      // todo, in_progress, completed
	Priority         string     `gorm:"size:50;default:medium" json:"priority"`  // low, medium, high
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsFrozen         bool       `gorm:"default:false" json:"is_frozen"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }
