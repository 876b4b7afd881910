// Package authz centralizes every role-based permission decision. Handlers
// and services never compare role strings directly; they ask Can.
package authz

// Role is a user's access tier.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProjectManager Role = "project_manager"
	RoleTeamMember     Role = "team_member"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleTeamMember:
		return true
	}
	return false
}

// Action identifies a mutating or administrative operation.
type Action string

const (
	ActionProjectCreate Action = "project:create"
	ActionProjectUpdate Action = "project:update"
	ActionProjectDelete Action = "project:delete"

	ActionTaskCreate Action = "task:create"
	ActionTaskUpdate Action = "task:update"
	ActionTaskDelete Action = "task:delete"

	ActionBaselineCreate Action = "baseline:create"

	ActionResourceCreate Action = "resource:create"
	ActionResourceUpdate Action = "resource:update"
	ActionResourceDelete Action = "resource:delete"

	ActionAllocationCreate Action = "allocation:create"

	ActionCostCreate Action = "cost:create"
	ActionCostDelete Action = "cost:delete"

	ActionDocumentCreate Action = "document:create"
	ActionDocumentDelete Action = "document:delete"

	ActionRelationshipCreate Action = "relationship:create"
	ActionRelationshipDelete Action = "relationship:delete"

	ActionUserManage Action = "user:manage"
)

// permissions maps each action to the roles allowed to perform it. Specific
// entries win over the general tier ordering: team members create and update
// their own task execution (tasks, projects, relationships) even though they
// are blocked from the rest of the management surface. Documents carry no
// restriction at all, matching observed behavior.
var permissions = map[Action]map[Role]bool{
	ActionProjectCreate: {RoleAdmin: true, RoleProjectManager: true, RoleTeamMember: true},
	ActionProjectUpdate: {RoleAdmin: true, RoleProjectManager: true, RoleTeamMember: true},
	ActionProjectDelete: {RoleAdmin: true, RoleProjectManager: true},

	ActionTaskCreate: {RoleAdmin: true, RoleProjectManager: true, RoleTeamMember: true},
	ActionTaskUpdate: {RoleAdmin: true, RoleProjectManager: true, RoleTeamMember: true},
	ActionTaskDelete: {RoleAdmin: true, RoleProjectManager: true},

	ActionBaselineCreate: {RoleAdmin: true, RoleProjectManager: true},

	ActionResourceCreate: {RoleAdmin: true, RoleProjectManager: true},
	ActionResourceUpdate: {RoleAdmin: true, RoleProjectManager: true},
	ActionResourceDelete: {RoleAdmin: true},

	ActionAllocationCreate: {RoleAdmin: true, RoleProjectManager: true},

	ActionCostCreate: {RoleAdmin: true, RoleProjectManager: true},
	ActionCostDelete: {RoleAdmin: true, RoleProjectManager: true},

	ActionDocumentCreate: {RoleAdmin: true, RoleProjectManager: true, RoleTeamMember: true},
	ActionDocumentDelete: {RoleAdmin: true, RoleProjectManager: true, RoleTeamMember: true},

	ActionRelationshipCreate: {RoleAdmin: true, RoleProjectManager: true, RoleTeamMember: true},
	ActionRelationshipDelete: {RoleAdmin: true, RoleProjectManager: true},

	ActionUserManage: {RoleAdmin: true},
}

// Can reports whether role may perform action. Unknown actions and unknown
// roles are denied.
func Can(role Role, action Action) bool {
	allowed, ok := permissions[action]
	if !ok {
		return false
	}
	return allowed[role]
}

// Actor is the authenticated identity making a request.
type Actor struct {
	UserID   string
	Username string
	Role     Role
}

// ScopedVisibility reports whether the actor sees only data tied to their
// own task assignments (true for team members) instead of everything.
func (a Actor) ScopedVisibility() bool {
	return a.Role == RoleTeamMember
}
