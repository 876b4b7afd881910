package models

import "time"

// Resource is a person, piece of equipment, or software license that can be
// allocated to project work.
type Resource struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	Name         string  `gorm:"size:200;not null" json:"name"`
	Type         string  `gorm:"size:50;not null" json:"type"` // person, equipment, software
	Availability string  `gorm:"size:50;default:available" json:"availability"`
	CostPerHour  float64 `gorm:"default:0" json:"cost_per_hour"`
}

func (Resource) TableName() string { return "resources" }

// ResourceAllocation assigns hours of a resource to a project, optionally
// pinned to a single task.
type ResourceAllocation struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	ResourceID     string    `gorm:"size:36;index;not null" json:"resource_id"`
	ProjectID      string    `gorm:"size:36;index;not null" json:"project_id"`
	TaskID         string    `gorm:"size:36" json:"task_id"`
	AllocatedHours float64   `json:"allocated_hours"`
	AllocationDate time.Time `json:"allocation_date"`
}

func (ResourceAllocation) TableName() string { return "resource_allocations" }
