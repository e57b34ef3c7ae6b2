package ticket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.TicketView, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*usecases.TicketView, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.TicketView, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.CommentView, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query usecases.ListCommentsQuery) (*usecases.ListCommentsResult, error)
}

type TicketHandler struct {
	createTicketUC CreateTicketExecutor
	getTicketUC    GetTicketExecutor
	listTicketsUC  ListTicketsExecutor
	updateTicketUC UpdateTicketExecutor
	deleteTicketUC DeleteTicketExecutor
	addCommentUC   AddCommentExecutor
	listCommentsUC ListCommentsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC CreateTicketExecutor,
	getTicketUC GetTicketExecutor,
	listTicketsUC ListTicketsExecutor,
	updateTicketUC UpdateTicketExecutor,
	deleteTicketUC DeleteTicketExecutor,
	addCommentUC AddCommentExecutor,
	listCommentsUC ListCommentsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		logger:         logger.NewLogger(),
	}
}

// actorFromContext reads the identity resolved by the auth middleware.
func actorFromContext(c *gin.Context) (uint, authorization.UserRole) {
	userID, _ := c.Get(constants.ContextKeyUserID)
	roleValue, _ := c.Get(constants.ContextKeyUserRole)

	role := authorization.RoleUser
	if roleStr, ok := roleValue.(string); ok {
		role = authorization.ParseUserRole(roleStr)
	}

	id, _ := userID.(uint)
	return id, role
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actorID, _ := actorFromContext(c)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newTicketResponse(*result), "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newTicketResponse(*result))
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Status: c.Query("status"),
		Skip:   pagination.Skip,
		Limit:  pagination.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]TicketResponse, 0, len(result.Tickets))
	for _, view := range result.Tickets {
		items = append(items, newTicketResponse(view))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Skip, result.Limit)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actorID, actorRole := actorFromContext(c)

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		ActorID:     actorID,
		ActorRole:   actorRole,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", newTicketResponse(*result))
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, actorRole := actorFromContext(c)

	err = h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:  ticketID,
		ActorID:   actorID,
		ActorRole: actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actorID, _ := actorFromContext(c)

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		AuthorID: actorID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newCommentResponse(*result), "Comment added successfully")
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]CommentResponse, 0, len(result.Comments))
	for _, view := range result.Comments {
		items = append(items, newCommentResponse(view))
	}

	// Comments are not paginated; the full set is one page.
	utils.ListSuccessResponse(c, items, result.Total, 0, len(items))
}
