package handlers

import (
	"errors"
	"net/http"

	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/services"
	"studio_ops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FirmHandler holds the firm service.
type FirmHandler struct {
	firmService services.FirmService
}

// NewFirmHandler creates a new FirmHandler.
func NewFirmHandler(fs services.FirmService) *FirmHandler {
	return &FirmHandler{firmService: fs}
}

// CreateFirm handles the creation of a new firm.
func (h *FirmHandler) CreateFirm(c *gin.Context) {
	var req services.CreateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateFirm: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	firm, err := h.firmService.CreateFirm(req)
	if err != nil {
		utils.LogError(err, "CreateFirm: Error from firmService.CreateFirm")
		if errors.Is(err, services.ErrFirmNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Firm name already exists.", err.Error()))
		} else if errors.Is(err, services.ErrFirmValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create firm.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, firm)
}

// GetFirms handles fetching all firms.
func (h *FirmHandler) GetFirms(c *gin.Context) {
	firms, err := h.firmService.GetFirms()
	if err != nil {
		utils.LogError(err, "GetFirms: Error from firmService.GetFirms")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch firms.", "Internal error"))
		return
	}
	if firms == nil {
		firms = []models.Firm{}
	}
	c.JSON(http.StatusOK, gin.H{"data": firms})
}

// GetFirmByID handles fetching a single firm by ID.
func (h *FirmHandler) GetFirmByID(c *gin.Context) {
	id := c.Param("id")

	firm, err := h.firmService.GetFirmByID(id)
	if err != nil {
		utils.LogError(err, "GetFirmByID: Error from firmService.GetFirmByID for ID "+id)
		if errors.Is(err, services.ErrFirmNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Firm not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch firm.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, firm)
}

// UpdateFirm handles updating a firm.
func (h *FirmHandler) UpdateFirm(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateFirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateFirm: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	firm, err := h.firmService.UpdateFirm(id, req)
	if err != nil {
		utils.LogError(err, "UpdateFirm: Error from firmService.UpdateFirm for ID "+id)
		if errors.Is(err, services.ErrFirmNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Firm not found.", err.Error()))
		} else if errors.Is(err, services.ErrFirmValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update firm.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, firm)
}

// DeleteFirm handles deleting a firm and its page mappings.
func (h *FirmHandler) DeleteFirm(c *gin.Context) {
	id := c.Param("id")

	if err := h.firmService.DeleteFirm(id); err != nil {
		utils.LogError(err, "DeleteFirm: Error from firmService.DeleteFirm for ID "+id)
		if errors.Is(err, services.ErrFirmNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Firm not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete firm.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Firm deleted successfully"})
}

// GetPageMappings handles fetching the brand-page to firm mapping.
func (h *FirmHandler) GetPageMappings(c *gin.Context) {
	mappings, err := h.firmService.GetPageMappings()
	if err != nil {
		utils.LogError(err, "GetPageMappings: Error from firmService.GetPageMappings")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch page mappings.", "Internal error"))
		return
	}
	if mappings == nil {
		mappings = []models.FirmPageMapping{}
	}
	c.JSON(http.StatusOK, gin.H{"data": mappings})
}

// SetPageMapping handles pointing a brand page at a firm.
func (h *FirmHandler) SetPageMapping(c *gin.Context) {
	var req services.SetPageMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SetPageMapping: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.firmService.SetPageMapping(req); err != nil {
		utils.LogError(err, "SetPageMapping: Error from firmService.SetPageMapping")
		if errors.Is(err, services.ErrFirmNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Firm not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to set page mapping.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page mapping saved"})
}
