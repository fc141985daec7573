package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/greenflow-inc/greenflow/internal/application/catalog"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// CatalogHandler serves the read-only species and package catalog.
type CatalogHandler struct {
	catalog *catalogapp.Service
	logger  logger.Interface
}

func NewCatalogHandler(catalog *catalogapp.Service, log logger.Interface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: log}
}

// ListSpecies returns every plant species in catalog order.
func (h *CatalogHandler) ListSpecies(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.catalog.ListSpecies())
}

// GetSpecies returns one species by id.
func (h *CatalogHandler) GetSpecies(c *gin.Context) {
	dto, err := h.catalog.GetSpecies(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// ListPackages returns every kit package in catalog order.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.catalog.ListPackages())
}

// GetPackage returns one package by id.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	dto, err := h.catalog.GetPackage(c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// Features returns the marketing feature list.
func (h *CatalogHandler) Features(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.catalog.Features())
}
