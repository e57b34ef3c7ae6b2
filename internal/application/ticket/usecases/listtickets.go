package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status string
	Skip   int
	Limit  int
}

type ListTicketsResult struct {
	Tickets []TicketView
	Total   int64
	Skip    int
	Limit   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		Skip:  query.Skip,
		Limit: query.Limit,
	}

	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit < 1 {
		filter.Limit = constants.DefaultListLimit
	}
	if filter.Limit > constants.MaxListLimit {
		filter.Limit = constants.MaxListLimit
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	views := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, newTicketView(t))
	}

	return &ListTicketsResult{
		Tickets: views,
		Total:   total,
		Skip:    filter.Skip,
		Limit:   filter.Limit,
	}, nil
}
