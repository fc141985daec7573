package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	consultationapp "github.com/greenflow-inc/greenflow/internal/application/consultation"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// ConsultationHandler serves expert booking requests.
type ConsultationHandler struct {
	consultations *consultationapp.Service
	logger        logger.Interface
}

func NewConsultationHandler(consultations *consultationapp.Service, log logger.Interface) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations, logger: log}
}

type bookRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message"`
}

// Book appends a booking to the ledger and returns its assigned id.
func (h *ConsultationHandler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, email and phone are required")
		return
	}

	dto, err := h.consultations.Book(c.Request.Context(), consultationapp.BookRequest{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "Consultation booked successfully")
}

// List returns every booking in id order.
func (h *ConsultationHandler) List(c *gin.Context) {
	dtos, err := h.consultations.ListAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dtos)
}
