package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ledgerapp "github.com/societyerp/backend/internal/application/ledger"
)

// PaymentHandler handles payment and receipt API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *ledgerapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *ledgerapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Record handles POST /payments. A receipt is issued in the same transaction
// unless the payment is flagged pending.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req ledgerapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Delete handles DELETE /payments/:id. The linked bill or letter reverts to
// its generated state and the receipt is removed.
func (h *PaymentHandler) Delete(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// BulkDeleteRequest carries the payment IDs for a bulk deletion
type BulkDeleteRequest struct {
	PaymentIDs []string `json:"payment_ids" binding:"required,min=1,dive,uuid"`
}

// BulkDelete handles POST /payments/bulk-delete. All listed payments are
// deleted in one transaction; any failure rolls back the whole batch.
func (h *PaymentHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(req.PaymentIDs))
	for _, raw := range req.PaymentIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid payment ID format: "+raw)
			return
		}
		ids = append(ids, id)
	}

	if err := h.paymentService.DeletePayments(c.Request.Context(), ids); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListByUnit handles GET /units/:id/payments
func (h *PaymentHandler) ListByUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	payments, err := h.paymentService.GetPaymentsByUnit(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// ListByProject handles GET /projects/:id/payments
func (h *PaymentHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	payments, err := h.paymentService.GetPaymentsByProject(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// GetReceipt handles GET /payments/:id/receipt
func (h *PaymentHandler) GetReceipt(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID format")
		return
	}

	receipt, err := h.paymentService.GetReceipt(c.Request.Context(), paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}
