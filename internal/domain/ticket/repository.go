package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

// TicketFilter selects and paginates tickets. Skip/Limit are offset
// pagination over creation order.
type TicketFilter struct {
	Status *vo.TicketStatus
	Skip   int
	Limit  int
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	CountByTicketID(ctx context.Context, ticketID uint) (int64, error)
}
