package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	AuthorID uint
	Content  string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentView, error) {
	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket for comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to add comment")
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	view := newCommentView(comment)
	return &view, nil
}
