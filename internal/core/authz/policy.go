// Package authz is the single authorization decision point for the API.
// Every resource handler consults the same pure functions here instead of
// carrying its own role conditionals. Decisions depend only on the actor,
// the action and the target object; the package performs no I/O.
package authz

import (
	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// Action names an operation the policy can rule on.
type Action string

const (
	ActionRead         Action = "read"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionList         Action = "list"
	ActionManageRole   Action = "manage-role"
	ActionManageActive Action = "manage-active"
)

// Actor is the authenticated or anonymous requester a decision is made for.
type Actor struct {
	ID            int64
	Role          domain.Role
	Active        bool
	Authenticated bool
}

// Anonymous is the zero actor used for unauthenticated requests.
var Anonymous = Actor{}

// ActorFor builds an Actor from a stored user.
func ActorFor(u *domain.User) Actor {
	if u == nil {
		return Anonymous
	}
	return Actor{ID: u.ID, Role: u.Role, Active: u.Active, Authenticated: true}
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Authenticated && a.Role == domain.RoleAdmin }

// CanCreateContent reports whether the actor may create posts and projects.
func (a Actor) CanCreateContent() bool {
	return a.Authenticated && (a.Role == domain.RoleAdmin || a.Role == domain.RoleMember)
}

// Ownable is the normalized ownership capability every content entity
// exposes. The policy never introspects attribute names.
type Ownable interface {
	OwnerID() int64
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Err converts a denial into the matching domain error: unauthenticated
// actors get ErrNotAuthenticated (401), authenticated ones ErrForbidden
// (403). Allowed decisions return nil.
func (d Decision) Err(a Actor) error {
	if d.Allowed {
		return nil
	}
	if !a.Authenticated {
		return domain.ErrNotAuthenticated
	}
	return domain.ErrForbidden
}

// CanCreate rules on content creation: authenticated admins and members only.
func CanCreate(a Actor) Decision {
	if !a.Authenticated {
		return deny("authentication required")
	}
	if !a.CanCreateContent() {
		return deny("role cannot create content")
	}
	return allow()
}

// CanModify rules on update/delete of a content item: its owner or an admin.
func CanModify(a Actor, obj Ownable) Decision {
	if !a.Authenticated {
		return deny("authentication required")
	}
	if a.IsAdmin() || obj.OwnerID() == a.ID {
		return allow()
	}
	return deny("not owner")
}

// CanManageRole rules on changing another account's role: admins only.
func CanManageRole(a Actor) Decision {
	if !a.Authenticated {
		return deny("authentication required")
	}
	if !a.IsAdmin() {
		return deny("admin only")
	}
	return allow()
}

// CanToggleActive rules on flipping an account's active flag: admins only,
// and never on the actor's own account. A self-toggle denial is surfaced by
// callers as a validation failure (400), not a forbidden, so the distinct
// reason matters.
func CanToggleActive(a Actor, targetID int64) Decision {
	if d := CanManageRole(a); !d.Allowed {
		return d
	}
	if targetID == a.ID {
		return deny("self deactivation")
	}
	return allow()
}

// CanUpdateProfile rules on a profile update. An actor may always update its
// own profile, but may not set its own role: role changes go through the
// admin-only path and attempting one here is a distinct denial.
func CanUpdateProfile(a Actor, setsRole bool) Decision {
	if !a.Authenticated {
		return deny("authentication required")
	}
	if setsRole {
		return deny("cannot change own role")
	}
	return allow()
}

// ListUsersScope describes how a user listing must be narrowed for an actor.
type ListUsersScope struct {
	ActiveOnly bool
}

// CanListUsers rules on listing accounts. Admins see every account; any
// other authenticated actor gets a listing restricted to active accounts.
func CanListUsers(a Actor) (Decision, ListUsersScope) {
	if !a.Authenticated {
		return deny("authentication required"), ListUsersScope{}
	}
	return allow(), ListUsersScope{ActiveOnly: !a.IsAdmin()}
}

// Authorize is the generic entry point described by the policy contract:
// (actor, action, target) → allow/deny with reason, evaluated in rule
// precedence order. Resource handlers mostly call the specific helpers
// above; Authorize keeps the full matrix in one testable place.
func Authorize(a Actor, action Action, target Ownable) Decision {
	switch action {
	case ActionRead, ActionList:
		// Visibility of individual items is the visibility filter's job;
		// read/list as such is open to everyone, anonymous included.
		return allow()
	case ActionCreate:
		return CanCreate(a)
	case ActionUpdate, ActionDelete:
		if target == nil {
			return deny("no target")
		}
		return CanModify(a, target)
	case ActionManageRole:
		return CanManageRole(a)
	case ActionManageActive:
		if target == nil {
			return deny("no target")
		}
		return CanToggleActive(a, target.OwnerID())
	}
	return deny("unknown action")
}
