package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/shared"
)

// Receipt is the 1:1 child of a cleared payment. Its receipt number is unique
// across the system and is generated from the clock when the caller does not
// supply one.
type Receipt struct {
	shared.BaseEntity
	PaymentID     uuid.UUID `json:"payment_id"`
	ReceiptNumber string    `json:"receipt_number"`
	ReceiptDate   time.Time `json:"receipt_date"`
}

// NewReceipt creates a receipt for a payment. An empty receiptNumber gets a
// generated time-derived token.
func NewReceipt(paymentID uuid.UUID, receiptNumber string, receiptDate time.Time) (*Receipt, error) {
	if paymentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Receipt must belong to a payment")
	}
	if receiptNumber == "" {
		receiptNumber = GenerateReceiptNumber()
	}
	return &Receipt{
		BaseEntity:    shared.NewBaseEntity(),
		PaymentID:     paymentID,
		ReceiptNumber: receiptNumber,
		ReceiptDate:   receiptDate,
	}, nil
}

// GenerateReceiptNumber returns a unique time-derived receipt token,
// e.g. "RCPT-20250830-1724999999123456789".
func GenerateReceiptNumber() string {
	now := time.Now()
	return fmt.Sprintf("RCPT-%s-%d", now.Format("20060102"), now.UnixNano())
}
