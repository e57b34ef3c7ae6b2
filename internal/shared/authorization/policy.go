package authorization

// Action enumerates the operations the permission policy decides on.
type Action string

const (
	ActionCreateTicket Action = "ticket:create"
	ActionViewTicket   Action = "ticket:view"
	ActionListTickets  Action = "ticket:list"
	ActionUpdateTicket Action = "ticket:update"
	ActionDeleteTicket Action = "ticket:delete"
	ActionAddComment   Action = "comment:add"
	ActionListComments Action = "comment:list"
)

// OwnedResource is anything with an owning account.
type OwnedResource interface {
	GetOwnerID() uint
}

// Can decides whether the actor may perform the action on the resource.
// The decision is total: every combination yields a boolean, never an error.
// Callers translate false into a forbidden failure.
//
// Reads and comment writes are open to every authenticated account; mutating
// a ticket requires ownership or the admin role. Account-level gates (active
// flag, token validity) are enforced upstream by identity resolution, not here.
func Can(actorID uint, role UserRole, action Action, resource OwnedResource) bool {
	switch action {
	case ActionUpdateTicket, ActionDeleteTicket:
		if resource == nil {
			return false
		}
		return CanAccessResourceByOwnerID(actorID, role, resource.GetOwnerID())
	case ActionCreateTicket, ActionViewTicket, ActionListTickets,
		ActionAddComment, ActionListComments:
		return true
	default:
		return false
	}
}

// CanAccessResourceByOwnerID reports whether the actor owns the resource or is admin.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
