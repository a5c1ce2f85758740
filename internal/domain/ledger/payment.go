package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/shared"
)

// PaymentMode represents how a payment was made
type PaymentMode string

const (
	PaymentModeCash     PaymentMode = "Cash"
	PaymentModeCheque   PaymentMode = "Cheque"
	PaymentModeTransfer PaymentMode = "Transfer"
)

// IsValid checks if the payment mode is valid
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCheque, PaymentModeTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMode
func (m PaymentMode) String() string {
	return string(m)
}

// ParsePaymentMode parses a payment mode case-insensitively
func ParsePaymentMode(value string) (PaymentMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "cash":
		return PaymentModeCash, nil
	case "cheque", "check":
		return PaymentModeCheque, nil
	case "transfer", "neft", "imps", "upi":
		return PaymentModeTransfer, nil
	}
	return "", shared.NewDomainError("INVALID_PAYMENT_MODE", fmt.Sprintf("Unknown payment mode '%s'", value))
}

// PaymentStatus represents the clearing status of a payment
type PaymentStatus string

const (
	PaymentStatusReceived PaymentStatus = "Received"
	PaymentStatusPending  PaymentStatus = "Pending" // e.g. cheque not yet cleared
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusReceived || s == PaymentStatusPending
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// Payment records money received against a unit, optionally linked to a
// single bill or letter.
type Payment struct {
	shared.BaseEntity
	ProjectID       uuid.UUID       `json:"project_id"`
	UnitID          uuid.UUID       `json:"unit_id"`
	BillID          *uuid.UUID      `json:"bill_id,omitempty"`
	LetterID        *uuid.UUID      `json:"letter_id,omitempty"`
	PaymentDate     time.Time       `json:"payment_date"`
	Amount          decimal.Decimal `json:"amount"`
	Mode            PaymentMode     `json:"mode"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Remarks         string          `json:"remarks,omitempty"`
	Status          PaymentStatus   `json:"status"`
}

// NewPayment creates a new payment record
func NewPayment(projectID, unitID uuid.UUID, paymentDate time.Time, amount decimal.Decimal, mode PaymentMode, status PaymentStatus) (*Payment, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Payment must belong to a project")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Payment must belong to a unit")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", fmt.Sprintf("Payment amount must be positive, got %s", amount))
	}
	if !mode.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_MODE", fmt.Sprintf("Unknown payment mode '%s'", mode))
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_STATUS", fmt.Sprintf("Unknown payment status '%s'", status))
	}
	return &Payment{
		BaseEntity:  shared.NewBaseEntity(),
		ProjectID:   projectID,
		UnitID:      unitID,
		PaymentDate: paymentDate,
		Amount:      amount,
		Mode:        mode,
		Status:      status,
	}, nil
}

// LinkBill links the payment to an invoice-style bill
func (p *Payment) LinkBill(billID uuid.UUID) error {
	if p.LetterID != nil {
		return shared.NewDomainError("INVALID_LINK", "Payment is already linked to a letter")
	}
	p.BillID = &billID
	p.Touch()
	return nil
}

// LinkLetter links the payment to a letter-style document
func (p *Payment) LinkLetter(letterID uuid.UUID) error {
	if p.BillID != nil {
		return shared.NewDomainError("INVALID_LINK", "Payment is already linked to a bill")
	}
	p.LetterID = &letterID
	p.Touch()
	return nil
}

// WithReference sets the payment reference number (cheque/transaction number)
func (p *Payment) WithReference(reference string) *Payment {
	p.ReferenceNumber = reference
	return p
}

// WithRemarks sets free-form remarks on the payment
func (p *Payment) WithRemarks(remarks string) *Payment {
	p.Remarks = remarks
	return p
}

// IsPending reports whether the payment has not yet cleared.
// Pending payments do not get a receipt.
func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}

// IsLinked reports whether the payment references a bill or letter
func (p *Payment) IsLinked() bool {
	return p.BillID != nil || p.LetterID != nil
}
