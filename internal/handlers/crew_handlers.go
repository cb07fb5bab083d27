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

// CrewHandler holds the crew service.
type CrewHandler struct {
	crewService services.CrewService
}

// NewCrewHandler creates a new CrewHandler.
func NewCrewHandler(cs services.CrewService) *CrewHandler {
	return &CrewHandler{crewService: cs}
}

// CreateCrewMember handles the creation of a new crew member.
func (h *CrewHandler) CreateCrewMember(c *gin.Context) {
	var req services.CreateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCrewMember: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	member, err := h.crewService.CreateCrewMember(req)
	if err != nil {
		utils.LogError(err, "CreateCrewMember: Error from crewService.CreateCrewMember")
		if errors.Is(err, services.ErrCrewValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create crew member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GetCrewMembers handles fetching crew with pagination, role filter and search.
func (h *CrewHandler) GetCrewMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	role := c.Query("role")
	searchTerm := c.Query("search")

	var pRole, pSearchTerm *string
	if role != "" {
		pRole = &role
	}
	if searchTerm != "" {
		pSearchTerm = &searchTerm
	}

	members, totalCount, err := h.crewService.GetCrewMembers(page, pageSize, pRole, pSearchTerm)
	if err != nil {
		utils.LogError(err, "GetCrewMembers: Error from crewService.GetCrewMembers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch crew.", "Internal error"))
		return
	}

	if members == nil {
		members = []models.CrewMember{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      members,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetCrewMemberByID handles fetching a single crew member by ID.
func (h *CrewHandler) GetCrewMemberByID(c *gin.Context) {
	id := c.Param("id")

	member, err := h.crewService.GetCrewMemberByID(id)
	if err != nil {
		utils.LogError(err, "GetCrewMemberByID: Error from crewService.GetCrewMemberByID for ID "+id)
		if errors.Is(err, services.ErrCrewNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Crew member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch crew member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, member)
}

// UpdateCrewMember handles updating a crew member.
func (h *CrewHandler) UpdateCrewMember(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateCrewMember: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	member, err := h.crewService.UpdateCrewMember(id, req)
	if err != nil {
		utils.LogError(err, "UpdateCrewMember: Error from crewService.UpdateCrewMember for ID "+id)
		if errors.Is(err, services.ErrCrewNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Crew member not found.", err.Error()))
		} else if errors.Is(err, services.ErrCrewValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update crew member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteCrewMember handles deleting a crew member.
func (h *CrewHandler) DeleteCrewMember(c *gin.Context) {
	id := c.Param("id")

	if err := h.crewService.DeleteCrewMember(id); err != nil {
		utils.LogError(err, "DeleteCrewMember: Error from crewService.DeleteCrewMember for ID "+id)
		if errors.Is(err, services.ErrCrewNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Crew member not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete crew member.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Crew member deleted successfully"})
}
