package ticket

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rannaghore/internal/application/ticket/usecases"
	"rannaghore/internal/shared/logger"
	"rannaghore/internal/shared/utils"
)

type TicketHandler struct {
	submitTicketUC usecases.SubmitTicketExecutor
	trackTicketUC  usecases.TrackTicketExecutor
	closeTicketUC  usecases.CloseTicketExecutor
	rateTicketUC   usecases.RateTicketExecutor
	searchFAQsUC   usecases.SearchFAQsExecutor
	listFAQsUC     usecases.ListFAQsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	trackTicketUC usecases.TrackTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	rateTicketUC usecases.RateTicketExecutor,
	searchFAQsUC usecases.SearchFAQsExecutor,
	listFAQsUC usecases.ListFAQsExecutor,
) *TicketHandler {
	return &TicketHandler{
		submitTicketUC: submitTicketUC,
		trackTicketUC:  trackTicketUC,
		closeTicketUC:  closeTicketUC,
		rateTicketUC:   rateTicketUC,
		searchFAQsUC:   searchFAQsUC,
		listFAQsUC:     listFAQsUC,
		logger:         logger.NewLogger(),
	}
}

// SubmitTicket handles POST /support/tickets. The form is multipart because
// of the optional attachment.
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid support ticket form", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	var attachment *usecases.AttachmentInput
	fileHeader, err := c.FormFile("attachment")
	if err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			h.logger.Warnw("failed to open uploaded attachment", "error", openErr)
			utils.ErrorResponse(c, http.StatusBadRequest, "could not read the uploaded attachment")
			return
		}
		defer file.Close()

		attachment = &usecases.AttachmentInput{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Content:  file,
		}
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), req.ToCommand(attachment))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, result.Message)
}

// TrackTicket handles POST /support/tickets/track. Lookup requires both the
// ticket number and the submitting email.
func (h *TicketHandler) TrackTicket(c *gin.Context) {
	var req TrackTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for track ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.trackTicketUC.Execute(c.Request.Context(), usecases.TrackTicketQuery{
		TicketNumber: req.TicketNumber,
		Email:        req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CloseTicket handles POST /support/tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

// RateTicket handles POST /support/tickets/:id/rate
func (h *TicketHandler) RateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for rate ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rateTicketUC.Execute(c.Request.Context(), usecases.RateTicketCommand{
		TicketID: ticketID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// SearchFAQs handles GET /support/faqs/search?q=
func (h *TicketHandler) SearchFAQs(c *gin.Context) {
	result, err := h.searchFAQsUC.Execute(c.Request.Context(), usecases.SearchFAQsQuery{
		Query: strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListFAQs handles GET /support/faqs. An optional ?category= narrows the
// list.
func (h *TicketHandler) ListFAQs(c *gin.Context) {
	result, err := h.listFAQsUC.Execute(c.Request.Context(), usecases.ListFAQsQuery{
		Category: strings.TrimSpace(c.Query("category")),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
