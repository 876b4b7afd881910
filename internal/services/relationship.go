package services

import (
	"github.com/google/uuid"
	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

// RelationshipService manages typed edges between entities. Edges are
// free-standing records; neither endpoint is checked for existence and
// deleting an endpoint leaves its edges behind.
type RelationshipService struct {
	db *gorm.DB
}

func NewRelationshipService(db *gorm.DB) *RelationshipService {
	return &RelationshipService{db: db}
}

type RelationshipRequest struct {
	FromEntityType   string `json:"from_entity_type" binding:"required"`
	FromEntityID     string `json:"from_entity_id" binding:"required"`
	ToEntityType     string `json:"to_entity_type" binding:"required"`
	ToEntityID       string `json:"to_entity_id" binding:"required"`
	RelationshipType string `json:"relationship_type" binding:"required,oneof=dependency allocation relates-to"`
}

func (s *RelationshipService) Create(req *RelationshipRequest, actor authz.Actor) (*models.Relationship, error) {
	if !authz.Can(actor.Role, authz.ActionRelationshipCreate) {
		return nil, response.NewForbidden("insufficient permissions")
	}

	rel := models.Relationship{
		ID:               uuid.NewString(),
		FromEntityType:   req.FromEntityType,
		FromEntityID:     req.FromEntityID,
		ToEntityType:     req.ToEntityType,
		ToEntityID:       req.ToEntityID,
		RelationshipType: req.RelationshipType,
	}

	if err := s.db.Create(&rel).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

// List returns edges, optionally restricted to those touching a project on
// either side.
func (s *RelationshipService) List(projectID string) ([]models.Relationship, error) {
	query := s.db.Model(&models.Relationship{})
	if projectID != "" {
		query = query.Where(
			s.db.Where("from_entity_type = ? AND from_entity_id = ?", "project", projectID).
				Or("to_entity_type = ? AND to_entity_id = ?", "project", projectID),
		)
	}

	var relationships []models.Relationship
	if err := query.Find(&relationships).Error; err != nil {
		return nil, err
	}
	return relationships, nil
}

func (s *RelationshipService) Delete(id string, actor authz.Actor) error {
	if !authz.Can(actor.Role, authz.ActionRelationshipDelete) {
		return response.NewForbidden("insufficient permissions")
	}

	result := s.db.Where("id = ?", id).Delete(&models.Relationship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("relationship not found")
	}
	return nil
}
