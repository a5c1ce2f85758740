package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	societyapp "github.com/societyerp/backend/internal/application/society"
)

// UnitHandler handles unit-related API endpoints
type UnitHandler struct {
	BaseHandler
	unitService    *societyapp.UnitService
	cascadeService *societyapp.CascadeDeletionService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *societyapp.UnitService, cascadeService *societyapp.CascadeDeletionService) *UnitHandler {
	return &UnitHandler{
		unitService:    unitService,
		cascadeService: cascadeService,
	}
}

// Create handles POST /units
func (h *UnitHandler) Create(c *gin.Context) {
	var req societyapp.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, unit)
}

// GetByID handles GET /units/:id
func (h *UnitHandler) GetByID(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	unit, err := h.unitService.GetUnit(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// ListByProject handles GET /projects/:id/units
func (h *UnitHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	units, err := h.unitService.ListUnits(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, units)
}

// Update handles PUT /units/:id
func (h *UnitHandler) Update(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	var req societyapp.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.unitService.UpdateUnit(c.Request.Context(), unitID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unit)
}

// Delete handles DELETE /units/:id. The unit's bills, letters, payments and
// receipts are removed in the same transaction.
func (h *UnitHandler) Delete(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	if err := h.cascadeService.DeleteUnit(c.Request.Context(), unitID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
