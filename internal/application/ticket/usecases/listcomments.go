package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketID uint
}

type ListCommentsResult struct {
	Comments []CommentView
	Total    int64
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	existing, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for comment listing", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", query.TicketID)
		return nil, errors.NewInternalError("failed to list comments")
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, newCommentView(c))
	}

	return &ListCommentsResult{
		Comments: views,
		Total:    int64(len(views)),
	}, nil
}
