package policy_test

import (
	"campusbook/policy"
	"campusbook/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
)

func staffActor() policy.Actor {
	return policy.Actor{ID: "staff-1", Role: constant.RoleStaff, Authenticated: true}
}

func studentActor() policy.Actor {
	return policy.Actor{ID: "student-1", Role: constant.RoleStudent, Authenticated: true}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		actor   policy.Actor
		action  policy.Action
		target  policy.Target
		allowed bool
	}{
		{
			name:    "anyone can sign up",
			actor:   policy.Anonymous(),
			action:  policy.ActionUserCreate,
			allowed: true,
		},
		{
			name:    "anonymous can list resources",
			actor:   policy.Anonymous(),
			action:  policy.ActionResourceList,
			allowed: true,
		},
		{
			name:    "anonymous can read a resource",
			actor:   policy.Anonymous(),
			action:  policy.ActionResourceRead,
			allowed: true,
		},
		{
			name:    "student cannot create a resource",
			actor:   studentActor(),
			action:  policy.ActionResourceCreate,
			allowed: false,
		},
		{
			name:    "staff can create a resource",
			actor:   staffActor(),
			action:  policy.ActionResourceCreate,
			allowed: true,
		},
		{
			name:    "student cannot delete a resource",
			actor:   studentActor(),
			action:  policy.ActionResourceDelete,
			allowed: false,
		},
		{
			name:    "student cannot list users",
			actor:   studentActor(),
			action:  policy.ActionUserList,
			allowed: false,
		},
		{
			name:    "staff can list users",
			actor:   staffActor(),
			action:  policy.ActionUserList,
			allowed: true,
		},
		{
			name:    "student can read own user record",
			actor:   studentActor(),
			action:  policy.ActionUserRead,
			target:  policy.Target{ID: "student-1"},
			allowed: true,
		},
		{
			name:    "student cannot read another user record",
			actor:   studentActor(),
			action:  policy.ActionUserRead,
			target:  policy.Target{ID: "student-2"},
			allowed: false,
		},
		{
			name:    "staff can read any user record",
			actor:   staffActor(),
			action:  policy.ActionUserRead,
			target:  policy.Target{ID: "student-2"},
			allowed: true,
		},
		{
			name:    "student can update own user record",
			actor:   studentActor(),
			action:  policy.ActionUserUpdate,
			target:  policy.Target{ID: "student-1"},
			allowed: true,
		},
		{
			name:    "student cannot delete a user even their own account",
			actor:   studentActor(),
			action:  policy.ActionUserDelete,
			target:  policy.Target{ID: "student-1"},
			allowed: false,
		},
		{
			name:    "staff can delete a user",
			actor:   staffActor(),
			action:  policy.ActionUserDelete,
			target:  policy.Target{ID: "student-1"},
			allowed: true,
		},
		{
			name:    "authenticated student can create a booking",
			actor:   studentActor(),
			action:  policy.ActionBookingCreate,
			allowed: true,
		},
		{
			name:    "anonymous cannot create a booking",
			actor:   policy.Anonymous(),
			action:  policy.ActionBookingCreate,
			allowed: false,
		},
		{
			name:    "authenticated student can list all bookings",
			actor:   studentActor(),
			action:  policy.ActionBookingList,
			allowed: true,
		},
		{
			name:    "anonymous cannot list bookings",
			actor:   policy.Anonymous(),
			action:  policy.ActionBookingList,
			allowed: false,
		},
		{
			name:    "booking core fields are immutable even for staff",
			actor:   staffActor(),
			action:  policy.ActionBookingUpdate,
			allowed: false,
		},
		{
			name:    "student cannot change booking status even on own booking",
			actor:   studentActor(),
			action:  policy.ActionBookingSetStatus,
			target:  policy.Target{ID: "booking-1", OwnerID: "student-1"},
			allowed: false,
		},
		{
			name:    "staff can change any booking status",
			actor:   staffActor(),
			action:  policy.ActionBookingSetStatus,
			target:  policy.Target{ID: "booking-1", OwnerID: "student-1"},
			allowed: true,
		},
		{
			name:    "owner can delete own booking",
			actor:   studentActor(),
			action:  policy.ActionBookingDelete,
			target:  policy.Target{ID: "booking-1", OwnerID: "student-1"},
			allowed: true,
		},
		{
			name:    "student cannot delete another user's booking",
			actor:   studentActor(),
			action:  policy.ActionBookingDelete,
			target:  policy.Target{ID: "booking-1", OwnerID: "student-2"},
			allowed: false,
		},
		{
			name:    "staff can delete any booking",
			actor:   staffActor(),
			action:  policy.ActionBookingDelete,
			target:  policy.Target{ID: "booking-1", OwnerID: "student-2"},
			allowed: true,
		},
		{
			name:    "student cannot list user activity",
			actor:   studentActor(),
			action:  policy.ActionActivityList,
			allowed: false,
		},
		{
			name:    "staff can list user activity",
			actor:   staffActor(),
			action:  policy.ActionActivityList,
			allowed: true,
		},
		{
			name:    "unknown action is denied",
			actor:   staffActor(),
			action:  policy.Action("bogus"),
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := policy.Authorize(tt.actor, tt.action, tt.target)

			assert.Equal(t, tt.allowed, decision.Allowed)
			if !tt.allowed {
				assert.NotEmpty(t, decision.Reason)
			} else {
				assert.Empty(t, decision.Reason)
			}
		})
	}
}
