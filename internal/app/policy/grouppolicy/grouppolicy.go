// Package grouppolicy maps (membership role, requested action) to
// allow/deny for group collaboration. All checks are pure functions over
// the group's embedded member list, so handlers can load the group once
// and make every decision from that snapshot.
package grouppolicy

import (
	"strings"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership roles. Owner is assigned once at group creation and is
// immutable; the remaining roles are granted at invite time.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// MemberOf returns the membership entry for userID, if any.
func MemberOf(g models.Group, userID primitive.ObjectID) (models.Member, bool) {
	for _, m := range g.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return models.Member{}, false
}

// IsMember reports whether userID appears in the member list.
func IsMember(g models.Group, userID primitive.ObjectID) bool {
	_, ok := MemberOf(g, userID)
	return ok
}

// CanManage reports whether a role may update group info, invite members,
// remove other members, or delete group tasks.
func CanManage(role string) bool {
	switch strings.ToLower(role) {
	case RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// CanEditTasks reports whether a role may create or update group tasks.
// Every role except viewer can.
func CanEditTasks(role string) bool {
	switch strings.ToLower(role) {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanDeleteGroup reports whether userID may delete the group. Only the
// owner can.
func CanDeleteGroup(g models.Group, userID primitive.ObjectID) bool {
	return g.OwnerID == userID
}

// InvitableRole reports whether a role may be granted at invite time.
// Owner is excluded: it exists only from group creation.
func InvitableRole(role string) bool {
	switch strings.ToLower(role) {
	case RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// SnapshotName resolves the denormalized assignee name for userID from the
// current member list. Returns nil when the user is not a member, which
// stores a null assignee name rather than a stale one.
func SnapshotName(g models.Group, userID primitive.ObjectID) *string {
	m, ok := MemberOf(g, userID)
	if !ok {
		return nil
	}
	name := m.UserName
	return &name
}
