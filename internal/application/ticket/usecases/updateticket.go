package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateTicketCommand is a partial update. Nil pointer fields are left
// untouched; only supplied fields are applied.
type UpdateTicketCommand struct {
	TicketID    uint
	ActorID     uint
	ActorRole   authorization.UserRole
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketView, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var view TicketView
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			uc.logger.Errorw("failed to get ticket for update", "error", err, "ticket_id", cmd.TicketID)
			return errors.NewInternalError("failed to get ticket")
		}
		if existing == nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if !authorization.Can(cmd.ActorID, cmd.ActorRole, authorization.ActionUpdateTicket, existing) {
			return errors.NewForbiddenError("not allowed to update this ticket")
		}

		if cmd.Title != nil {
			if err := existing.UpdateTitle(*cmd.Title); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if cmd.Description != nil {
			if err := existing.UpdateDescription(*cmd.Description); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if cmd.Status != nil {
			status, err := vo.NewTicketStatus(*cmd.Status)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := existing.ChangeStatus(status); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if cmd.Priority != nil {
			priority, err := vo.NewPriority(*cmd.Priority)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := existing.ChangePriority(priority); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if cmd.AssigneeID != nil {
			if err := existing.AssignTo(*cmd.AssigneeID); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		// updated_at is stamped even when the request carried no fields.
		existing.Touch()

		if err := uc.ticketRepo.Update(txCtx, existing); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
			return errors.NewInternalError("failed to update ticket")
		}

		view = newTicketView(existing)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	return &view, nil
}
