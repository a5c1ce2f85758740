package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/societyerp/backend/internal/application/billing"
)

// BillHandler handles invoice-style bill API endpoints
type BillHandler struct {
	BaseHandler
	generationService *billingapp.BillGenerationService
	queryService      *billingapp.DocumentQueryService
	documentService   *billingapp.DocumentService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(
	generationService *billingapp.BillGenerationService,
	queryService *billingapp.DocumentQueryService,
	documentService *billingapp.DocumentService,
) *BillHandler {
	return &BillHandler{
		generationService: generationService,
		queryService:      queryService,
		documentService:   documentService,
	}
}

// GenerateBillsResponse reports the outcome of a billing run
type GenerateBillsResponse struct {
	GeneratedCount int `json:"generated_count"`
}

// Generate handles POST /bills/generate. It creates one bill per billable
// unit of the project in a single all-or-nothing batch.
func (h *BillHandler) Generate(c *gin.Context) {
	var input billingapp.GenerateBillsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	count, err := h.generationService.GenerateBills(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, GenerateBillsResponse{GeneratedCount: count})
}

// GetByID handles GET /bills/:id
func (h *BillHandler) GetByID(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid bill ID format")
		return
	}

	bill, err := h.queryService.GetBill(c.Request.Context(), billID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bill)
}

// ListByProject handles GET /projects/:id/bills
func (h *BillHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	bills, err := h.queryService.ListBillsByProject(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bills)
}

// ListByUnit handles GET /units/:id/bills
func (h *BillHandler) ListByUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	bills, err := h.queryService.ListBillsByUnit(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, bills)
}

// RenderDocumentResponse carries the stored path of a rendered document
type RenderDocumentResponse struct {
	DocumentPath string `json:"document_path"`
}

// Render handles POST /bills/:id/document. The rendered file's path is
// recorded on the bill and returned.
func (h *BillHandler) Render(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid bill ID format")
		return
	}

	path, err := h.documentService.RenderBill(c.Request.Context(), billID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RenderDocumentResponse{DocumentPath: path})
}
