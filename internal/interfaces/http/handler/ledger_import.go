package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	importapp "github.com/societyerp/backend/internal/application/import"
)

// LedgerImportHandler handles ledger import API endpoints
type LedgerImportHandler struct {
	BaseHandler
	importService *importapp.LedgerImportService
}

// NewLedgerImportHandler creates a new LedgerImportHandler
func NewLedgerImportHandler(importService *importapp.LedgerImportService) *LedgerImportHandler {
	return &LedgerImportHandler{importService: importService}
}

// ImportRowsRequest carries the raw rows of an external ledger
type ImportRowsRequest struct {
	Rows []importapp.LedgerRow `json:"rows" binding:"required,min=1"`
}

// Import handles POST /projects/:id/ledger-import. Malformed rows are
// skipped and reported; storage faults abort the whole import.
func (h *LedgerImportHandler) Import(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req ImportRowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.importService.ImportRows(c.Request.Context(), projectID, req.Rows)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
