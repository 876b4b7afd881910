package services

import (
	"errors"

	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
	"gorm.io/gorm"
)

// UserService covers the admin-only user management surface.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=admin project_manager team_member"`
}

// List returns all users. Password hashes never serialize.
func (s *UserService) List(actor authz.Actor) ([]models.User, error) {
	if !authz.Can(actor.Role, authz.ActionUserManage) {
		return nil, response.NewForbidden("admin access required")
	}

	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update replaces a user's profile fields. Admins cannot edit their own row
// through this path, which keeps at least one working admin account.
func (s *UserService) Update(id string, req *UpdateUserRequest, actor authz.Actor) (*models.User, error) {
	if !authz.Can(actor.Role, authz.ActionUserManage) {
		return nil, response.NewForbidden("admin access required")
	}
	if id == actor.UserID {
		return nil, response.NewBadRequest("cannot modify your own account")
	}

	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"username": req.Username,
		"email":    req.Email,
		"role":     req.Role,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.db.Where("id = ?", id).First(&user)
	return &user, nil
}

// Delete removes a user.
func (s *UserService) Delete(id string, actor authz.Actor) error {
	if !authz.Can(actor.Role, authz.ActionUserManage) {
		return response.NewForbidden("admin access required")
	}
	if id == actor.UserID {
		return response.NewBadRequest("cannot delete your own account")
	}

	result := s.db.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("user not found")
	}
	return nil
}
