package models

import "time"

// Document records file metadata attached to a project. The file itself
// lives outside the store; only the path is tracked here.
type Document struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID        string    `gorm:"size:36;index;not null" json:"project_id"`
	Category         string    `gorm:"size:100;not null" json:"category"` // project-documents, images, relationships
	Filename         string    `gorm:"size:255;not null" json:"filename"`
	FilePath         string    `gorm:"size:500;not null" json:"file_path"`
	UploadedByUserID string    `gorm:"size:36" json:"uploaded_by_user_id"`
	UploadDate       time.Time `json:"upload_date"`
}

func (Document) TableName() string { return "documents" }
