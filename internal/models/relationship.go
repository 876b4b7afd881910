package models

// Relationship is a typed edge between two entities, stored as an
// independent record. Referential integrity is not enforced: deleting an
// endpoint leaves the edge behind.
type Relationship struct {
	ID               string `gorm:"primaryKey;size:36" json:"id"`
	FromEntityType   string `gorm:"size:50;not null" json:"from_entity_type"` // project, task, resource
	FromEntityID     string `gorm:"size:36;index;not null" json:"from_entity_id"`
	ToEntityType     string `gorm:"size:50;not null" json:"to_entity_type"`
	ToEntityID       string `gorm:"size:36;index;not null" json:"to_entity_id"`
	RelationshipType string `gorm:"size:50;not null" json:"relationship_type"` // dependency, allocation, relates-to
}

func (Relationship) TableName() string { return "relationships" }
