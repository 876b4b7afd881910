package models

import "time"

// ProjectBaseline is an immutable snapshot of a project's state.
type ProjectBaseline struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	SnapshotData   JSONMap   `gorm:"type:text" json:"snapshot_data"`
	ProjectID      string    `gorm:"size:36;index;not null" json:"project_id"`
	FrozenDate     time.Time `json:"frozen_date"`
	FrozenByUserID string    `gorm:"size:36" json:"frozen_by_user_id"`
}

func (ProjectBaseline) TableName() string { return "project_baselines" }

// TaskBaseline is an immutable snapshot of a task's state. Creating one is
// the only operation that freezes the task.
type TaskBaseline struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	SnapshotData   JSONMap   `gorm:"type:text" json:"snapshot_data"`
	TaskID         string    `gorm:"size:36;index;not null" json:"task_id"`
	FrozenDate     time.Time `json:"frozen_date"`
	FrozenByUserID string    `gorm:"size:36" json:"frozen_by_user_id"`
}

func (TaskBaseline) TableName() string { return "task_baselines" }
