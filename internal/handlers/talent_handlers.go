package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studio_ops_backend/internal/models"
	"studio_ops_backend/internal/services"
	"studio_ops_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TalentHandler holds the talent service.
type TalentHandler struct {
	talentService services.TalentService
}

// NewTalentHandler creates a new TalentHandler.
func NewTalentHandler(ts services.TalentService) *TalentHandler {
	return &TalentHandler{talentService: ts}
}

// CreateTalent handles the creation of a new talent member.
func (h *TalentHandler) CreateTalent(c *gin.Context) {
	var req services.CreateTalentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTalent: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	talent, err := h.talentService.CreateTalent(req)
	if err != nil {
		utils.LogError(err, "CreateTalent: Error from talentService.CreateTalent")
		if errors.Is(err, services.ErrTalentValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create talent member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, talent)
}

// GetTalent handles fetching all talent with pagination and search.
func (h *TalentHandler) GetTalent(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	searchTerm := c.Query("search")

	var pSearchTerm *string
	if searchTerm != "" {
		pSearchTerm = &searchTerm
	}

	talent, totalCount, err := h.talentService.GetTalent(page, pageSize, pSearchTerm)
	if err != nil {
		utils.LogError(err, "GetTalent: Error from talentService.GetTalent")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch talent.", "Internal error"))
		return
	}

	if talent == nil {
		talent = []models.TalentMember{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      talent,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetTalentByID handles fetching a single talent member by ID.
func (h *TalentHandler) GetTalentByID(c *gin.Context) {
	id := c.Param("id")

	talent, err := h.talentService.GetTalentByID(id)
	if err != nil {
		utils.LogError(err, "GetTalentByID: Error from talentService.GetTalentByID for ID "+id)
		if errors.Is(err, services.ErrTalentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Talent member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch talent member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, talent)
}

// UpdateTalent handles updating a talent member.
func (h *TalentHandler) UpdateTalent(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateTalentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateTalent: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	talent, err := h.talentService.UpdateTalent(id, req)
	if err != nil {
		utils.LogError(err, "UpdateTalent: Error from talentService.UpdateTalent for ID "+id)
		if errors.Is(err, services.ErrTalentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Talent member not found.", err.Error()))
		} else if errors.Is(err, services.ErrTalentValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update talent member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, talent)
}

// DeleteTalent handles deleting a talent member.
func (h *TalentHandler) DeleteTalent(c *gin.Context) {
	id := c.Param("id")

	if err := h.talentService.DeleteTalent(id); err != nil {
		utils.LogError(err, "DeleteTalent: Error from talentService.DeleteTalent for ID "+id)
		if errors.Is(err, services.ErrTalentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Talent member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete talent member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Talent member deleted successfully"})
}
