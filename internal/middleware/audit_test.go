package middleware

import (
	"strings"
	"testing"
)

func TestParseRouteInfo(t *testing.T) {
	tests := []struct {
		fullPath   string
		method     string
		wantModule string
		wantAction string
	}{
		{"/api/tasks/:id", "PUT", "Tasks", "Update"},
		{"/api/projects", "POST", "Projects", "Create"},
		{"/api/audit-logs", "DELETE", "Audit Logs", "Delete"},
		{"/api/baselines/task", "POST", "Baselines", "Create"},
	}

	for _, tt := range tests {
		module, action := parseRouteInfo(tt.fullPath, tt.method)
		if module != tt.wantModule {
			t.Errorf("parseRouteInfo(%q) module = %q, expected %q", tt.fullPath, module, tt.wantModule)
		}
		if action != tt.wantAction {
			t.Errorf("parseRouteInfo(%q, %q) action = %q, expected %q", tt.fullPath, tt.method, action, tt.wantAction)
		}
	}
}

func TestMaskSensitiveFields(t *testing.T) {
	body := `{"username":"alice","password":"hunter2"}`
	masked := maskSensitiveFields(body)

	if strings.Contains(masked, "hunter2") {
		t.Errorf("password value leaked: %s", masked)
	}
	if !strings.Contains(masked, "alice") {
		t.Errorf("non-sensitive value should survive: %s", masked)
	}
}

func TestMaskSensitiveFields_NoSensitiveKeys(t *testing.T) {
	body := `{"name":"Apollo","budget":1000}`
	if got := maskSensitiveFields(body); got != body {
		t.Errorf("body without credentials should pass through, got %s", got)
	}
}

func TestMaskSensitiveFields_TokenAndSecret(t *testing.T) {
	body := `{"token":"abc123","secret":"xyz789"}`
	masked := maskSensitiveFields(body)

	if strings.Contains(masked, "abc123") || strings.Contains(masked, "xyz789") {
		t.Errorf("credential values leaked: %s", masked)
	}
}

func TestFormatAuditMessage(t *testing.T) {
	msg := formatAuditMessage("alice", "POST", "/api/projects", 201)
	if !strings.Contains(msg, "alice") || !strings.Contains(msg, "OK") {
		t.Errorf("unexpected message: %s", msg)
	}

	msg = formatAuditMessage("bob", "DELETE", "/api/tasks/t-1", 403)
	if !strings.Contains(msg, "Failed") {
		t.Errorf("non-2xx should report Failed: %s", msg)
	}
}
