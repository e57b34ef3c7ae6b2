package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/api/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		// Comment routes must be registered before the bare /:id routes.
		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
		tickets.GET("/:id/comments", cfg.TicketHandler.ListComments)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", cfg.TicketHandler.DeleteTicket)
	}
}
