package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountapp "github.com/greenflow-inc/greenflow/internal/application/account"
	"github.com/greenflow-inc/greenflow/internal/interfaces/http/middleware"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// SubscriptionHandler serves subscription activation, status and package
// selection for the authenticated account.
type SubscriptionHandler struct {
	accounts *accountapp.Service
	logger   logger.Interface
}

func NewSubscriptionHandler(accounts *accountapp.Service, log logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{accounts: accounts, logger: log}
}

// Subscribe starts a fresh subscription window. Subscribing again overwrites
// the window; it never stacks.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	sub, err := h.accounts.Subscribe(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Subscription activated", sub)
}

// Status reports whether the subscription covers the current instant.
func (h *SubscriptionHandler) Status(c *gin.Context) {
	status, err := h.accounts.SubscriptionStatus(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", status)
}

type selectPackageRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

// SelectPackage records the account's kit package choice.
func (h *SubscriptionHandler) SelectPackage(c *gin.Context) {
	var req selectPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "package_id is required")
		return
	}

	dto, err := h.accounts.SelectPackage(c.Request.Context(), middleware.AccountID(c), req.PackageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Package selected", dto)
}
