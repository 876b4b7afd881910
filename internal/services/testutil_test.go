package services

import (
	"testing"

	"github.com/luowei/planboard/backend/internal/authz"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	utils.SetJWTSecret("test-secret-for-service-testing")
}

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.ProjectBaseline{},
		&models.TaskBaseline{},
		&models.Resource{},
		&models.ResourceAllocation{},
		&models.Cost{},
		&models.Document{},
		&models.Relationship{},
		&models.AuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

var (
	adminActor   = authz.Actor{UserID: "admin-1", Username: "admin", Role: authz.RoleAdmin}
	managerActor = authz.Actor{UserID: "pm-1", Username: "manager", Role: authz.RoleProjectManager}
	memberActor  = authz.Actor{UserID: "tm-1", Username: "member", Role: authz.RoleTeamMember}
)
