package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	appErrors "helpdesk/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute_OwnerCascades(t *testing.T) {
	var calls []string
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, 5, 1, vo.StatusOpen, nil), nil
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			calls = append(calls, "ticket")
			return nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		DeleteByTicketIDFunc: func(ctx context.Context, ticketID uint) error {
			assert.Equal(t, uint(5), ticketID)
			calls = append(calls, "comments")
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockTicketRepo, mockCommentRepo, &mockTxManager{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  5,
		ActorID:   1,
		ActorRole: authorization.RoleUser,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"comments", "ticket"}, calls)
}

func TestDeleteTicketUseCase_Execute_NonOwnerForbidden(t *testing.T) {
	deleted := false
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, 5, 1, vo.StatusOpen, nil), nil
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			deleted = true
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockTicketRepo, &mockCommentRepository{}, &mockTxManager{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  5,
		ActorID:   2,
		ActorRole: authorization.RoleUser,
	})

	require.Error(t, err)
	assert.True(t, appErrors.IsForbiddenError(err))
	assert.False(t, deleted)
}

func TestDeleteTicketUseCase_Execute_AdminOverride(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, 5, 1, vo.StatusOpen, nil), nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockTicketRepo, &mockCommentRepository{}, &mockTxManager{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  5,
		ActorID:   99,
		ActorRole: authorization.RoleAdmin,
	})

	require.NoError(t, err)
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockTicketRepo, &mockCommentRepository{}, &mockTxManager{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  999,
		ActorID:   1,
		ActorRole: authorization.RoleUser,
	})

	require.Error(t, err)
	assert.True(t, appErrors.IsNotFoundError(err))
}

func TestDeleteTicketUseCase_Execute_CommentDeleteFailureAborts(t *testing.T) {
	ticketDeleted := false
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, 5, 1, vo.StatusOpen, nil), nil
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			ticketDeleted = true
			return nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		DeleteByTicketIDFunc: func(ctx context.Context, ticketID uint) error {
			return appErrors.NewInternalError("comment table unavailable")
		},
	}

	useCase := NewDeleteTicketUseCase(mockTicketRepo, mockCommentRepo, &mockTxManager{}, &mockLogger{})
	err := useCase.Execute(context.Background(), DeleteTicketCommand{
		TicketID:  5,
		ActorID:   1,
		ActorRole: authorization.RoleUser,
	})

	require.Error(t, err)
	assert.False(t, ticketDeleted)
}
