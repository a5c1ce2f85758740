package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/societyerp/backend/internal/application/billing"
)

// RateHandler handles maintenance rate API endpoints
type RateHandler struct {
	BaseHandler
	rateService *billingapp.RateService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(rateService *billingapp.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// Create handles POST /rates
func (h *RateHandler) Create(c *gin.Context) {
	var req billingapp.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.rateService.CreateRate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, rate)
}

// GetByID handles GET /rates/:id
func (h *RateHandler) GetByID(c *gin.Context) {
	rateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	rate, err := h.rateService.GetRate(c.Request.Context(), rateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rate)
}

// ListByProject handles GET /projects/:id/rates
func (h *RateHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	rates, err := h.rateService.ListRates(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rates)
}

// Delete handles DELETE /rates/:id
func (h *RateHandler) Delete(c *gin.Context) {
	rateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	if err := h.rateService.DeleteRate(c.Request.Context(), rateID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
