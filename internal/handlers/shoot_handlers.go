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

// ShootHandler holds the shoot service.
type ShootHandler struct {
	shootService services.ShootService
}

// NewShootHandler creates a new ShootHandler.
func NewShootHandler(ss services.ShootService) *ShootHandler {
	return &ShootHandler{shootService: ss}
}

func respondShootError(c *gin.Context, err error, action string) {
	utils.LogError(err, action+": Error from shootService")
	switch {
	case errors.Is(err, services.ErrShootNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shoot not found.", err.Error()))
	case errors.Is(err, services.ErrShootValidation), errors.Is(err, services.ErrInvalidShootStatus):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process shoot.", "Internal error"))
	}
}

// CreateShoot handles the creation of a new shoot. The expense ledger is
// synchronized against the assigned roster before the shoot is stored.
func (h *ShootHandler) CreateShoot(c *gin.Context) {
	var req services.CreateShootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateShoot: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	shoot, err := h.shootService.CreateShoot(req)
	if err != nil {
		respondShootError(c, err, "CreateShoot")
		return
	}
	c.JSON(http.StatusCreated, shoot)
}

// GetShoots handles fetching shoots with pagination and filters.
func (h *ShootHandler) GetShoots(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filters := models.ShootFilters{
		PageNum:  page,
		PageSize: pageSize,
	}
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	if v := c.Query("brand_page"); v != "" {
		filters.Page = &v
	}
	if v := c.Query("date_from"); v != "" {
		filters.DateFrom = &v
	}
	if v := c.Query("date_to"); v != "" {
		filters.DateTo = &v
	}
	if v := c.Query("search"); v != "" {
		filters.Search = &v
	}

	shoots, totalCount, err := h.shootService.GetShoots(filters)
	if err != nil {
		utils.LogError(err, "GetShoots: Error from shootService.GetShoots")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch shoots.", "Internal error"))
		return
	}

	if shoots == nil {
		shoots = []models.Shoot{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      shoots,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetShootByID handles fetching a single shoot with its ledger.
func (h *ShootHandler) GetShootByID(c *gin.Context) {
	id := c.Param("id")

	shoot, err := h.shootService.GetShootByID(id)
	if err != nil {
		respondShootError(c, err, "GetShootByID")
		return
	}
	c.JSON(http.StatusOK, shoot)
}

// UpdateShoot handles saving a shoot and its edited ledger.
func (h *ShootHandler) UpdateShoot(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateShootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateShoot: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	shoot, err := h.shootService.UpdateShoot(id, req)
	if err != nil {
		respondShootError(c, err, "UpdateShoot")
		return
	}
	c.JSON(http.StatusOK, shoot)
}

// UpdateShootStatus handles moving a shoot through its lifecycle.
func (h *ShootHandler) UpdateShootStatus(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateShootStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateShootStatus: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	shoot, err := h.shootService.UpdateShootStatus(id, req)
	if err != nil {
		respondShootError(c, err, "UpdateShootStatus")
		return
	}
	c.JSON(http.StatusOK, shoot)
}

// SyncFinancials recomputes the shoot's expense ledger against the
// current roster and returns the refreshed shoot.
func (h *ShootHandler) SyncFinancials(c *gin.Context) {
	id := c.Param("id")

	shoot, err := h.shootService.SyncFinancials(id)
	if err != nil {
		respondShootError(c, err, "SyncFinancials")
		return
	}
	c.JSON(http.StatusOK, shoot)
}

// DeleteShoot handles deleting a shoot and its ledger.
func (h *ShootHandler) DeleteShoot(c *gin.Context) {
	id := c.Param("id")

	if err := h.shootService.DeleteShoot(id); err != nil {
		respondShootError(c, err, "DeleteShoot")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shoot deleted successfully"})
}
