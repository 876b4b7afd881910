package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret-for-middleware-testing")
}

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
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username, role string) {
	t.Helper()
	user := models.User{ID: id, Username: username, Email: username + "@example.com", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func protectedRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(AuthRequired(db))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"user_id":  GetUserID(c),
			"username": GetUsername(c),
			"role":     GetRole(c),
		})
	})
	return router
}

func TestAuthRequired_NoHeader(t *testing.T) {
	router := protectedRouter(newTestDB(t))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthRequired_InvalidFormat(t *testing.T) {
	router := protectedRouter(newTestDB(t))

	testCases := []string{
		"InvalidToken",
		"Basic token123",
		"Bearer",
	}

	for _, authHeader := range testCases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", authHeader)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", authHeader, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router := protectedRouter(newTestDB(t))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u-1", "alice", "admin")
	router := protectedRouter(db)

	token, _ := utils.GenerateToken("u-1", "alice", "admin", -1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthRequired_ValidToken(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u-1", "alice", "project_manager")
	router := protectedRouter(db)

	token, _ := utils.GenerateToken("u-1", "alice", "project_manager", 24)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAuthRequired_DeletedUser(t *testing.T) {
	db := newTestDB(t)
	router := protectedRouter(db)

	// Token is valid but the account no longer exists.
	token, _ := utils.GenerateToken("u-gone", "ghost", "admin", 24)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// The role on the user row wins over the role baked into the token, so a
// demotion takes effect on the very next request.
func TestAuthRequired_RoleFromDatabase(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u-1", "alice", "team_member")
	router := protectedRouter(db)

	token, _ := utils.GenerateToken("u-1", "alice", "admin", 24)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"role":"team_member"`) {
		t.Errorf("context role should come from the database, got body %s", body)
	}
}

func TestAdminRequired(t *testing.T) {
	tests := []struct {
		role       string
		wantStatus int
	}{
		{"admin", http.StatusOK},
		{"project_manager", http.StatusForbidden},
		{"team_member", http.StatusForbidden},
	}

	for _, tt := range tests {
		router := gin.New()
		role := tt.role
		router.Use(func(c *gin.Context) {
			c.Set(ContextUserID, "u-1")
			c.Set(ContextUsername, "tester")
			c.Set(ContextRole, role)
		})
		router.Use(AdminRequired())
		router.GET("/admin", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		router.ServeHTTP(w, req)

		if w.Code != tt.wantStatus {
			t.Errorf("role %q: expected status %d, got %d", tt.role, tt.wantStatus, w.Code)
		}
	}
}

func TestGetActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ContextUserID, "u-9")
	c.Set(ContextUsername, "bob")
	c.Set(ContextRole, "project_manager")

	actor := GetActor(c)
	if actor.UserID != "u-9" || actor.Username != "bob" || string(actor.Role) != "project_manager" {
		t.Errorf("GetActor() = %+v, expected the context triple", actor)
	}
}
