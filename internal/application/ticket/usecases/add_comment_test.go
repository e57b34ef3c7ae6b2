package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	appErrors "helpdesk/internal/shared/errors"
)

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	var savedComment *ticket.Comment
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, 5, 1, vo.StatusOpen, nil), nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *ticket.Comment) error {
			if err := comment.SetID(77); err != nil {
				return err
			}
			savedComment = comment
			return nil
		},
	}

	useCase := NewAddCommentUseCase(mockTicketRepo, mockCommentRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 5,
		AuthorID: 3,
		Content:  "Tried power cycling, the jam persists.",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(77), result.ID)
	assert.Equal(t, uint(5), result.TicketID)
	assert.Equal(t, uint(3), result.AuthorID)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, savedComment)
	assert.Equal(t, "Tried power cycling, the jam persists.", savedComment.Content())
}

func TestAddCommentUseCase_Execute_TicketNotFound(t *testing.T) {
	saved := false
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *ticket.Comment) error {
			saved = true
			return nil
		},
	}

	useCase := NewAddCommentUseCase(mockTicketRepo, mockCommentRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 999,
		AuthorID: 3,
		Content:  "Orphan comment",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, appErrors.IsNotFoundError(err))
	assert.False(t, saved)
}

func TestAddCommentUseCase_Execute_MultibyteContentCountsCharacters(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, 5, 1, vo.StatusOpen, nil), nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *ticket.Comment) error {
			return comment.SetID(78)
		},
	}

	// 5000 two-byte characters exceed the byte bound but not the character bound
	useCase := NewAddCommentUseCase(mockTicketRepo, mockCommentRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 5,
		AuthorID: 3,
		Content:  strings.Repeat("ü", 5000),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(78), result.ID)
}

func TestAddCommentUseCase_Execute_ContentValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty content", ""},
		{"content too long", strings.Repeat("x", 5001)},
		{"content too long in characters", strings.Repeat("ü", 5001)},
	}

	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, 5, 1, vo.StatusOpen, nil), nil
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewAddCommentUseCase(mockTicketRepo, &mockCommentRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), AddCommentCommand{
				TicketID: 5,
				AuthorID: 3,
				Content:  tt.content,
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, appErrors.IsValidationError(err))
		})
	}
}
