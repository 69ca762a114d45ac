package policy

import (
	"context"

	"campusbook/shared/constant"
	"campusbook/shared/failure"
)

// Action identifies an operation a caller wants to perform.
type Action string

const (
	ActionUserCreate       Action = "user:create"
	ActionUserList         Action = "user:list"
	ActionUserRead         Action = "user:read"
	ActionUserUpdate       Action = "user:update"
	ActionUserDelete       Action = "user:delete"
	ActionResourceCreate   Action = "resource:create"
	ActionResourceRead     Action = "resource:read"
	ActionResourceList     Action = "resource:list"
	ActionResourceUpdate   Action = "resource:update"
	ActionResourceDelete   Action = "resource:delete"
	ActionBookingCreate    Action = "booking:create"
	ActionBookingRead      Action = "booking:read"
	ActionBookingList      Action = "booking:list"
	ActionBookingUpdate    Action = "booking:update"
	ActionBookingSetStatus Action = "booking:set_status"
	ActionBookingDelete    Action = "booking:delete"
	ActionActivityList     Action = "activity:list"
)

// Actor is the caller identity resolved from the request credentials.
// The zero value is an unauthenticated caller.
type Actor struct {
	ID            string
	Email         string
	Role          string
	Authenticated bool
}

// Anonymous returns an unauthenticated actor.
func Anonymous() Actor {
	return Actor{}
}

// IsStaff reports whether the actor holds the STAFF role.
func (a Actor) IsStaff() bool {
	return a.Authenticated && a.Role == constant.RoleStaff
}

// Target carries the identity of the record an action operates on.
// OwnerID is the user that owns the record, when ownership applies.
type Target struct {
	ID      string
	OwnerID string
}

// Decision is the outcome of an authorization check. Reason is set
// on denial and is safe to surface to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

const (
	reasonUnauthenticated = "authentication required"
	reasonStaffOnly       = "this action requires the STAFF role"
	reasonNotOwner        = "you may only access your own record"
	reasonImmutable       = "booking date, time slot and resource cannot be changed after creation"
	reasonUnknownAction   = "unknown action"
)

// Authorize evaluates whether actor may perform action on target.
// It is a pure function of its arguments and never consults ambient state.
func Authorize(actor Actor, action Action, target Target) Decision {
	switch action {
	case ActionUserCreate, ActionResourceRead, ActionResourceList:
		return allow()

	case ActionUserList, ActionUserDelete, ActionActivityList, ActionBookingSetStatus,
		ActionResourceCreate, ActionResourceUpdate, ActionResourceDelete:
		if !actor.Authenticated {
			return deny(reasonUnauthenticated)
		}
		if !actor.IsStaff() {
			return deny(reasonStaffOnly)
		}
		return allow()

	case ActionUserRead, ActionUserUpdate:
		if !actor.Authenticated {
			return deny(reasonUnauthenticated)
		}
		if actor.IsStaff() || actor.ID == target.ID {
			return allow()
		}
		return deny(reasonNotOwner)

	case ActionBookingCreate, ActionBookingRead, ActionBookingList:
		if !actor.Authenticated {
			return deny(reasonUnauthenticated)
		}
		return allow()

	case ActionBookingUpdate:
		// Core booking fields are immutable, only status transitions exist.
		return deny(reasonImmutable)

	case ActionBookingDelete:
		if !actor.Authenticated {
			return deny(reasonUnauthenticated)
		}
		if actor.IsStaff() || actor.ID == target.OwnerID {
			return allow()
		}
		return deny(reasonNotOwner)
	}

	return deny(reasonUnknownAction)
}

// Check runs Authorize and converts a denial into the matching failure,
// 401 for unauthenticated callers and 403 otherwise.
func Check(actor Actor, action Action, target Target) error {
	decision := Authorize(actor, action, target)
	if decision.Allowed {
		return nil
	}

	if !actor.Authenticated {
		return failure.Unauthorized(decision.Reason) //nolint:wrapcheck
	}

	return failure.Forbidden(decision.Reason) //nolint:wrapcheck
}

// FromContext builds the actor from the auth claims the middleware stored
// on the request context. Absent claims yield an anonymous actor.
func FromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if id == "" {
		return Anonymous()
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{ID: id, Email: email, Role: role, Authenticated: true}
}
