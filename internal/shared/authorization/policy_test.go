package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ownedStub struct {
	ownerID uint
}

func (o ownedStub) GetOwnerID() uint {
	return o.ownerID
}

func TestCan(t *testing.T) {
	owned := ownedStub{ownerID: 7}

	tests := []struct {
		name     string
		actorID  uint
		role     UserRole
		action   Action
		resource OwnedResource
		want     bool
	}{
		{"owner can update", 7, RoleUser, ActionUpdateTicket, owned, true},
		{"owner can delete", 7, RoleUser, ActionDeleteTicket, owned, true},
		{"non-owner cannot update", 8, RoleUser, ActionUpdateTicket, owned, false},
		{"non-owner cannot delete", 8, RoleUser, ActionDeleteTicket, owned, false},
		{"admin can update any", 8, RoleAdmin, ActionUpdateTicket, owned, true},
		{"admin can delete any", 8, RoleAdmin, ActionDeleteTicket, owned, true},
		{"anyone can view", 8, RoleUser, ActionViewTicket, owned, true},
		{"anyone can list", 8, RoleUser, ActionListTickets, owned, true},
		{"anyone can create", 8, RoleUser, ActionCreateTicket, nil, true},
		{"anyone can comment", 8, RoleUser, ActionAddComment, owned, true},
		{"anyone can list comments", 8, RoleUser, ActionListComments, owned, true},
		{"update without resource denied", 7, RoleAdmin, ActionUpdateTicket, nil, false},
		{"unknown action denied", 7, RoleAdmin, Action("ticket:purge"), owned, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Can(tt.actorID, tt.role, tt.action, tt.resource)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole("superuser"))
	assert.Equal(t, RoleUser, ParseUserRole(""))
}
