package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	billingapp "github.com/societyerp/backend/internal/application/billing"
)

// PenaltyHandler handles penalty accrual API endpoints
type PenaltyHandler struct {
	BaseHandler
	penaltyService *billingapp.PenaltyAccrualService
}

// NewPenaltyHandler creates a new PenaltyHandler
func NewPenaltyHandler(penaltyService *billingapp.PenaltyAccrualService) *PenaltyHandler {
	return &PenaltyHandler{penaltyService: penaltyService}
}

// Sweep handles POST /penalties/sweep. Without a project_id query parameter
// every overdue unpaid document in the system is swept; with one, only that
// project's documents. The sweep is best effort and reports what it touched.
func (h *PenaltyHandler) Sweep(c *gin.Context) {
	var result *billingapp.PenaltyAccrualResult
	var err error

	if raw := c.Query("project_id"); raw != "" {
		projectID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			h.BadRequest(c, "Invalid project ID format")
			return
		}
		result, err = h.penaltyService.AccruePenaltiesForProject(c.Request.Context(), projectID)
	} else {
		result, err = h.penaltyService.AccruePenalties(c.Request.Context())
	}

	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
