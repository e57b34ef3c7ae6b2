package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	// Comments are removed with their parent inside one transaction so a
	// failure leaves both tables untouched.
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to get ticket for delete", "error", err, "ticket_id", cmd.TicketID)
			return errors.NewInternalError("failed to get ticket")
		}
		if existing == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if !authorization.Can(cmd.ActorID, cmd.ActorRole, authorization.ActionDeleteTicket, existing) {
			return errors.NewForbiddenError("not allowed to delete this ticket")
		}

		if err := uc.commentRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			uc.logger.Errorw("failed to delete ticket comments", "error", err, "ticket_id", cmd.TicketID)
			return errors.NewInternalError("failed to delete ticket")
		}

		if err := uc.ticketRepo.Delete(txCtx, cmd.TicketID); err != nil {
			uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
			return errors.NewInternalError("failed to delete ticket")
		}

		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)
	return nil
}
