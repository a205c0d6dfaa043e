package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "rannaghore/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	// SubmitLimiter throttles the anonymous submission form per IP.
	SubmitLimiter gin.HandlerFunc
}

// SetupTicketRoutes registers the support surface. Everything here is
// public: tickets are tracked by number plus email, not by account.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	support := engine.Group("/support")
	{
		tickets := support.Group("/tickets")
		{
			if config.SubmitLimiter != nil {
				tickets.POST("", config.SubmitLimiter, config.TicketHandler.SubmitTicket)
			} else {
				tickets.POST("", config.TicketHandler.SubmitTicket)
			}
			tickets.POST("/track", config.TicketHandler.TrackTicket)
			tickets.POST("/:id/close", config.TicketHandler.CloseTicket)
			tickets.POST("/:id/rate", config.TicketHandler.RateTicket)
		}

		faqs := support.Group("/faqs")
		{
			faqs.GET("", config.TicketHandler.ListFAQs)
			faqs.GET("/search", config.TicketHandler.SearchFAQs)
		}
	}
}
