package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/societyerp/backend/internal/application/billing"
)

// LetterHandler handles letter-style bill API endpoints
type LetterHandler struct {
	BaseHandler
	generationService *billingapp.BillGenerationService
	queryService      *billingapp.DocumentQueryService
	documentService   *billingapp.DocumentService
}

// NewLetterHandler creates a new LetterHandler
func NewLetterHandler(
	generationService *billingapp.BillGenerationService,
	queryService *billingapp.DocumentQueryService,
	documentService *billingapp.DocumentService,
) *LetterHandler {
	return &LetterHandler{
		generationService: generationService,
		queryService:      queryService,
		documentService:   documentService,
	}
}

// GenerateLettersResponse reports the outcome of a letter generation run
type GenerateLettersResponse struct {
	GeneratedCount int `json:"generated_count"`
}

// Generate handles POST /letters/generate. One annual letter is created per
// billable unit, all within a single transaction.
func (h *LetterHandler) Generate(c *gin.Context) {
	var input billingapp.GenerateLettersInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	count, err := h.generationService.GenerateLetters(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, GenerateLettersResponse{GeneratedCount: count})
}

// GetByID handles GET /letters/:id
func (h *LetterHandler) GetByID(c *gin.Context) {
	letterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid letter ID format")
		return
	}

	letter, err := h.queryService.GetLetter(c.Request.Context(), letterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, letter)
}

// ListByProject handles GET /projects/:id/letters
func (h *LetterHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	letters, err := h.queryService.ListLettersByProject(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, letters)
}

// ListByUnit handles GET /units/:id/letters
func (h *LetterHandler) ListByUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	letters, err := h.queryService.ListLettersByUnit(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, letters)
}

// Render handles POST /letters/:id/document
func (h *LetterHandler) Render(c *gin.Context) {
	letterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid letter ID format")
		return
	}

	path, err := h.documentService.RenderLetter(c.Request.Context(), letterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RenderDocumentResponse{DocumentPath: path})
}
