package ticket

import (
	"time"

	"helpdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=255"`
	Description string `json:"description" binding:"required,min=10,max=5000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		CreatorID:   creatorID,
	}
}

// UpdateTicketRequest carries a partial update; absent fields stay untouched.
type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=5,max=255"`
	Description *string `json:"description" binding:"omitempty,min=10,max=5000"`
	Status      *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	AssigneeID  *uint   `json:"assignee_id" binding:"omitempty,gt=0"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

type TicketResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	CreatorID   uint    `json:"creator_id"`
	AssigneeID  *uint   `json:"assignee_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	ResolvedAt  *string `json:"resolved_at,omitempty"`
}

func newTicketResponse(view usecases.TicketView) TicketResponse {
	resp := TicketResponse{
		ID:          view.ID,
		Title:       view.Title,
		Description: view.Description,
		Status:      view.Status,
		Priority:    view.Priority,
		CreatorID:   view.CreatorID,
		AssigneeID:  view.AssigneeID,
		CreatedAt:   view.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   view.UpdatedAt.Format(time.RFC3339),
	}

	if view.ResolvedAt != nil {
		resolvedAt := view.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &resolvedAt
	}

	return resp
}

type CommentResponse struct {
	ID        uint   `json:"id"`
	TicketID  uint   `json:"ticket_id"`
	AuthorID  uint   `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func newCommentResponse(view usecases.CommentView) CommentResponse {
	return CommentResponse{
		ID:        view.ID,
		TicketID:  view.TicketID,
		AuthorID:  view.AuthorID,
		Content:   view.Content,
		CreatedAt: view.CreatedAt.Format(time.RFC3339),
		UpdatedAt: view.UpdatedAt.Format(time.RFC3339),
	}
}
