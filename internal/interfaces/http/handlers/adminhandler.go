package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminapp "github.com/greenflow-inc/greenflow/internal/application/admin"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// AdminHandler serves operational statistics.
type AdminHandler struct {
	admin  *adminapp.Service
	logger logger.Interface
}

func NewAdminHandler(admin *adminapp.Service, log logger.Interface) *AdminHandler {
	return &AdminHandler{admin: admin, logger: log}
}

// Stats returns account, subscription and consultation counts.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
