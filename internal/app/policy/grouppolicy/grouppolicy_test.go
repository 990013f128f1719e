package grouppolicy

import (
	"testing"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testGroup(owner, admin, viewer primitive.ObjectID) models.Group {
	return models.Group{
		ID:      primitive.NewObjectID(),
		OwnerID: owner,
		Members: []models.Member{
			{UserID: owner, UserName: "Olive Owner", Role: RoleOwner},
			{UserID: admin, UserName: "Andy Admin", Role: RoleAdmin},
			{UserID: viewer, UserName: "Vera Viewer", Role: RoleViewer},
		},
	}
}

func TestMemberOf(t *testing.T) {
	owner := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	viewer := primitive.NewObjectID()
	g := testGroup(owner, admin, viewer)

	m, ok := MemberOf(g, admin)
	if !ok {
		t.Fatal("expected admin to be found")
	}
	if m.Role != RoleAdmin {
		t.Errorf("role: got %q, want %q", m.Role, RoleAdmin)
	}

	if _, ok := MemberOf(g, primitive.NewObjectID()); ok {
		t.Error("expected stranger to not be found")
	}
}

func TestCanManage(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleOwner, true},
		{RoleAdmin, true},
		{RoleMember, false},
		{RoleViewer, false},
		{"OWNER", true}, // case-insensitive
		{"", false},
	}
	for _, tt := range tests {
		if got := CanManage(tt.role); got != tt.want {
			t.Errorf("CanManage(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestCanEditTasks(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleOwner, true},
		{RoleAdmin, true},
		{RoleMember, true},
		{RoleViewer, false},
		{"Viewer", false},
	}
	for _, tt := range tests {
		if got := CanEditTasks(tt.role); got != tt.want {
			t.Errorf("CanEditTasks(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestCanDeleteGroup(t *testing.T) {
	owner := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	g := testGroup(owner, admin, primitive.NewObjectID())

	if !CanDeleteGroup(g, owner) {
		t.Error("owner should be able to delete the group")
	}
	if CanDeleteGroup(g, admin) {
		t.Error("admin should not be able to delete the group")
	}
}

func TestInvitableRole(t *testing.T) {
	if InvitableRole(RoleOwner) {
		t.Error("owner must not be an invitable role")
	}
	for _, role := range []string{RoleAdmin, RoleMember, RoleViewer} {
		if !InvitableRole(role) {
			t.Errorf("expected %q to be invitable", role)
		}
	}
}

func TestSnapshotName(t *testing.T) {
	owner := primitive.NewObjectID()
	admin := primitive.NewObjectID()
	g := testGroup(owner, admin, primitive.NewObjectID())

	name := SnapshotName(g, admin)
	if name == nil || *name != "Andy Admin" {
		t.Errorf("SnapshotName(member): got %v, want Andy Admin", name)
	}

	if got := SnapshotName(g, primitive.NewObjectID()); got != nil {
		t.Errorf("SnapshotName(non-member): got %v, want nil", got)
	}
}
