package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	CreatorID   uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketView, error) {
	priorityStr := cmd.Priority
	if priorityStr == "" {
		priorityStr = vo.PriorityMedium.String()
	}

	priority, err := vo.NewPriority(priorityStr)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, priority, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "creator_id", cmd.CreatorID)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "creator_id", cmd.CreatorID)

	view := newTicketView(newTicket)
	return &view, nil
}
