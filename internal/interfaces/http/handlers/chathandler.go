package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatapp "github.com/greenflow-inc/greenflow/internal/application/chat"
	"github.com/greenflow-inc/greenflow/internal/interfaces/http/middleware"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// ChatHandler serves the growing advisor.
type ChatHandler struct {
	chat   *chatapp.Service
	logger logger.Interface
}

func NewChatHandler(chat *chatapp.Service, log logger.Interface) *ChatHandler {
	return &ChatHandler{chat: chat, logger: log}
}

type askRequest struct {
	Message string `json:"message" binding:"required"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

// Ask answers one advisor question. Works anonymously; authenticated
// exchanges are recorded in the account's history.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.chat.Ask(c.Request.Context(), middleware.AccountID(c), req.Message)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", askResponse{Reply: reply})
}

// History returns the authenticated account's advisor exchanges in order.
func (h *ChatHandler) History(c *gin.Context) {
	history, err := h.chat.History(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", history)
}
