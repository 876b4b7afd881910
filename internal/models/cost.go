package models

import "time"

// Cost is a single expense entry booked against a project.
type Cost struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID   string    `gorm:"size:36;index;not null" json:"project_id"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `gorm:"type:text" json:"description"`
}

func (Cost) TableName() string { return "costs" }
