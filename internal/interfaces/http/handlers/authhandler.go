// Package handlers holds the gin HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountapp "github.com/greenflow-inc/greenflow/internal/application/account"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/auth"
	"github.com/greenflow-inc/greenflow/internal/interfaces/http/middleware"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// AuthHandler serves registration, login and the current-account endpoint.
type AuthHandler struct {
	accounts   *accountapp.Service
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthHandler(accounts *accountapp.Service, jwtService *auth.JWTService, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		accounts:   accounts,
		jwtService: jwtService,
		logger:     log,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token   string                 `json:"token"`
	Account *accountapp.AccountDTO `json:"account"`
}

// Register creates an account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	dto, err := h.accounts.Register(c.Request.Context(), accountapp.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto, "Account created successfully")
}

// Login verifies credentials and issues a session token. Every failure mode
// gets the same uniform response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	dto, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	token, err := h.jwtService.Generate(dto.ID, dto.SID)
	if err != nil {
		h.logger.Errorw("failed to issue token", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", loginResponse{
		Token:   token,
		Account: dto,
	})
}

// Logout acknowledges the logout. Tokens are stateless; clients discard
// theirs.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	dto, err := h.accounts.Get(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
