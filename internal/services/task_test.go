package services

import (
	"testing"

	"github.com/luowei/planboard/backend/internal/models"
	"github.com/luowei/planboard/backend/pkg/response"
)

func TestTaskCreate_Defaults(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	task, err := svc.Create(&TaskRequest{Name: "Write docs", ProjectID: "p-1"}, memberActor)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if task.Status != "todo" {
		t.Errorf("status = %q, expected default %q", task.Status, "todo")
	}
	if task.Priority != "medium" {
		t.Errorf("priority = %q, expected default %q", task.Priority, "medium")
	}
	if task.IsFrozen {
		t.Error("new task must not be frozen")
	}
}

func TestTaskList_ProjectFilter(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	svc.Create(&TaskRequest{Name: "A", ProjectID: "p-1"}, managerActor)
	svc.Create(&TaskRequest{Name: "B", ProjectID: "p-1"}, managerActor)
	svc.Create(&TaskRequest{Name: "C", ProjectID: "p-2"}, managerActor)

	tasks, err := svc.List("p-1", adminActor)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("filtered list has %d tasks, expected 2", len(tasks))
	}
}

// A team member always gets only their own tasks, no matter what filter they
// send.
func TestTaskList_TeamMemberForcedToOwn(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	svc.Create(&TaskRequest{Name: "Mine", ProjectID: "p-1", AssignedToUserID: memberActor.UserID}, managerActor)
	svc.Create(&TaskRequest{Name: "Theirs", ProjectID: "p-1", AssignedToUserID: "someone-else"}, managerActor)

	tasks, err := svc.List("p-1", memberActor)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("team member sees %d tasks, expected 1", len(tasks))
	}
	if tasks[0].Name != "Mine" {
		t.Errorf("team member sees %q, expected own task", tasks[0].Name)
	}

	// Without a project filter the scope still applies.
	tasks, _ = svc.List("", memberActor)
	if len(tasks) != 1 {
		t.Errorf("unfiltered list has %d tasks for team member, expected 1", len(tasks))
	}
}

func TestTaskUpdate_FullReplacement(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	task, _ := svc.Create(&TaskRequest{
		Name:        "Initial",
		Description: "details",
		ProjectID:   "p-1",
		Status:      "in_progress",
		Priority:    "high",
	}, managerActor)

	updated, err := svc.Update(task.ID, &TaskRequest{Name: "Renamed", ProjectID: "p-1"}, managerActor)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Name != "Renamed" {
		t.Errorf("name = %q, expected %q", updated.Name, "Renamed")
	}
	if updated.Description != "" {
		t.Errorf("description = %q, expected cleared", updated.Description)
	}
	if updated.Status != "todo" {
		t.Errorf("status = %q, expected reset to default", updated.Status)
	}
	if updated.Priority != "medium" {
		t.Errorf("priority = %q, expected reset to default", updated.Priority)
	}
}

// Freezing blocks team members only. Managers and admins edit frozen tasks
// freely, and the update does not unfreeze anything.
func TestTaskUpdate_FrozenBlocksTeamMember(t *testing.T) {
	db := newTestDB(t)
	taskSvc := NewTaskService(db)
	baselineSvc := NewBaselineService(db)

	task, _ := taskSvc.Create(&TaskRequest{
		Name:             "Critical",
		ProjectID:        "p-1",
		AssignedToUserID: memberActor.UserID,
	}, managerActor)

	_, err := baselineSvc.CreateTaskBaseline(task.ID, &BaselineRequest{
		Name:         "v1",
		SnapshotData: models.JSONMap{"name": "Critical"},
	}, managerActor)
	if err != nil {
		t.Fatalf("CreateTaskBaseline() error = %v", err)
	}

	req := &TaskRequest{Name: "Edited", ProjectID: "p-1", AssignedToUserID: memberActor.UserID}

	_, err = taskSvc.Update(task.ID, req, memberActor)
	if !response.IsKind(err, response.CodeFrozen) {
		t.Errorf("team member edit of frozen task: error = %v, expected frozen rejection", err)
	}

	updated, err := taskSvc.Update(task.ID, req, managerActor)
	if err != nil {
		t.Fatalf("manager edit of frozen task: error = %v", err)
	}
	if !updated.IsFrozen {
		t.Error("editing a frozen task must not unfreeze it")
	}

	if _, err := taskSvc.Update(task.ID, req, adminActor); err != nil {
		t.Errorf("admin edit of frozen task: error = %v", err)
	}
}

func TestTaskUpdate_NotFound(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	_, err := svc.Update("missing", &TaskRequest{Name: "x", ProjectID: "p"}, adminActor)
	if !response.IsKind(err, response.CodeNotFound) {
		t.Errorf("error = %v, expected not found", err)
	}
}

func TestTaskDelete_Permissions(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	task, _ := svc.Create(&TaskRequest{Name: "Doomed", ProjectID: "p-1"}, managerActor)

	err := svc.Delete(task.ID, memberActor)
	if !response.IsKind(err, response.CodeForbidden) {
		t.Errorf("team member delete: error = %v, expected forbidden", err)
	}

	if err := svc.Delete(task.ID, managerActor); err != nil {
		t.Errorf("manager delete: error = %v", err)
	}

	err = svc.Delete(task.ID, adminActor)
	if !response.IsKind(err, response.CodeNotFound) {
		t.Errorf("double delete: error = %v, expected not found", err)
	}
}
