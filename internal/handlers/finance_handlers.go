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

// FinanceHandler holds the finance service.
type FinanceHandler struct {
	financeService services.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(fs services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: fs}
}

func respondFinanceError(c *gin.Context, err error, action string) {
	utils.LogError(err, action+": Error from financeService")
	switch {
	case errors.Is(err, services.ErrShootNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shoot not found.", err.Error()))
	case errors.Is(err, services.ErrDocumentNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Document not found.", err.Error()))
	case errors.Is(err, services.ErrFirmNotFound), errors.Is(err, services.ErrFirmNotResolved):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, utils.ErrCodeValidationFailed, "No issuing firm could be resolved.", err.Error()))
	case errors.Is(err, services.ErrRecipientNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, utils.ErrCodeValidationFailed, "Recipient is not on the shoot roster.", err.Error()))
	case errors.Is(err, services.ErrFinanceValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process document.", "Internal error"))
	}
}

// ComposeDraft computes a document preview without storing anything.
func (h *FinanceHandler) ComposeDraft(c *gin.Context) {
	var req services.ComposeDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ComposeDraft: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	draft, err := h.financeService.ComposeDraft(req)
	if err != nil {
		respondFinanceError(c, err, "ComposeDraft")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// RecordDocument freezes a draft into the append-only registry.
func (h *FinanceHandler) RecordDocument(c *gin.Context) {
	var req services.ComposeDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "RecordDocument: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	doc, err := h.financeService.RecordDocument(req)
	if err != nil {
		respondFinanceError(c, err, "RecordDocument")
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetDocuments handles listing issued documents with filters.
func (h *FinanceHandler) GetDocuments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filters := models.DocumentFilters{
		Page:     page,
		PageSize: pageSize,
	}
	if v := c.Query("firm_id"); v != "" {
		filters.FirmID = &v
	}
	if v := c.Query("type"); v != "" {
		filters.DocType = &v
	}
	if v := c.Query("search"); v != "" {
		filters.Search = &v
	}

	docs, totalCount, err := h.financeService.GetDocuments(filters)
	if err != nil {
		utils.LogError(err, "GetDocuments: Error from financeService.GetDocuments")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch documents.", "Internal error"))
		return
	}

	if docs == nil {
		docs = []models.Document{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      docs,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDocumentByID returns the reconstructed draft view of an issued
// document, ready for the printable renderer.
func (h *FinanceHandler) GetDocumentByID(c *gin.Context) {
	id := c.Param("id")

	draft, err := h.financeService.GetDocumentByID(id)
	if err != nil {
		respondFinanceError(c, err, "GetDocumentByID")
		return
	}
	c.JSON(http.StatusOK, draft)
}
