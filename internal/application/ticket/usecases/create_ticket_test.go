package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	appErrors "helpdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			if err := tkt.SetID(100); err != nil {
				return err
			}
			savedTicket = tkt
			return nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "Printer on floor 3 is jammed",
		Description: "Paper jam error persists after clearing the tray",
		Priority:    vo.PriorityHigh.String(),
		CreatorID:   1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, vo.StatusOpen.String(), result.Status)
	assert.Equal(t, vo.PriorityHigh.String(), result.Priority)
	assert.Equal(t, uint(1), result.CreatorID)
	assert.Nil(t, result.ResolvedAt)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, savedTicket)
	assert.Equal(t, "Printer on floor 3 is jammed", savedTicket.Title())
}

func TestCreateTicketUseCase_Execute_DefaultPriority(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(101)
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "VPN keeps disconnecting",
		Description: "Connection drops every few minutes on the office network",
		CreatorID:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.PriorityMedium.String(), result.Priority)
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "title too short",
			command: CreateTicketCommand{
				Title:       "Hey",
				Description: "A description long enough to pass validation",
				CreatorID:   1,
			},
		},
		{
			name: "title too long",
			command: CreateTicketCommand{
				Title:       strings.Repeat("x", 256),
				Description: "A description long enough to pass validation",
				CreatorID:   1,
			},
		},
		{
			name: "title too long in characters",
			command: CreateTicketCommand{
				Title:       strings.Repeat("ü", 256),
				Description: "A description long enough to pass validation",
				CreatorID:   1,
			},
		},
		{
			name: "description too short",
			command: CreateTicketCommand{
				Title:       "Valid title here",
				Description: "too short",
				CreatorID:   1,
			},
		},
		{
			name: "invalid priority",
			command: CreateTicketCommand{
				Title:       "Valid title here",
				Description: "A description long enough to pass validation",
				Priority:    "urgent",
				CreatorID:   1,
			},
		},
		{
			name: "missing creator",
			command: CreateTicketCommand{
				Title:       "Valid title here",
				Description: "A description long enough to pass validation",
				CreatorID:   0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, appErrors.IsValidationError(err))
		})
	}
}

func TestCreateTicketUseCase_Execute_MultibyteLengthCountsCharacters(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(102)
		},
	}

	// 255 two-byte characters exceed the byte bound but not the character bound
	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       strings.Repeat("ü", 255),
		Description: strings.Repeat("ß", 5000),
		CreatorID:   3,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(102), result.ID)
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("database connection failed")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "Valid title here",
		Description: "A description long enough to pass validation",
		CreatorID:   1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := appErrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrorTypeInternal, appErr.Type)
}
