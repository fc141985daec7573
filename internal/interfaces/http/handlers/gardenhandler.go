package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	gardenapp "github.com/greenflow-inc/greenflow/internal/application/garden"
	"github.com/greenflow-inc/greenflow/internal/interfaces/http/middleware"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// GardenHandler serves planting, progress and the dashboard.
type GardenHandler struct {
	gardens *gardenapp.Service
	logger  logger.Interface
}

func NewGardenHandler(gardens *gardenapp.Service, log logger.Interface) *GardenHandler {
	return &GardenHandler{gardens: gardens, logger: log}
}

type addPlantRequest struct {
	SpeciesID string `json:"species_id" binding:"required"`
}

// AddPlant records a planting event for the authenticated account.
func (h *GardenHandler) AddPlant(c *gin.Context) {
	var req addPlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "species_id is required")
		return
	}

	crop, err := h.gardens.AddPlant(c.Request.Context(), middleware.AccountID(c), req.SpeciesID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, crop, "Plant added successfully")
}

// Progress returns growth progress for every crop in planting order.
func (h *GardenHandler) Progress(c *gin.Context) {
	views, err := h.gardens.Progress(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", views)
}

// Dashboard returns the account's landing view.
func (h *GardenHandler) Dashboard(c *gin.Context) {
	dto, err := h.gardens.Dashboard(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
