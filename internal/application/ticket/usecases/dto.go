package usecases

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

// TicketView is the read model returned by ticket use cases.
type TicketView struct {
	ID          uint
	Title       string
	Description string
	Status      string
	Priority    string
	CreatorID   uint
	AssigneeID  *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
}

func newTicketView(t *ticket.Ticket) TicketView {
	return TicketView{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		ResolvedAt:  t.ResolvedAt(),
	}
}

// CommentView is the read model returned by comment use cases.
type CommentView struct {
	ID        uint
	TicketID  uint
	AuthorID  uint
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func newCommentView(c *ticket.Comment) CommentView {
	return CommentView{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
