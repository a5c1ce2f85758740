package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/ledger"
)

// PaymentModel is the persistence model for the Payment entity.
type PaymentModel struct {
	BaseModel
	ProjectID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	BillID          *uuid.UUID      `gorm:"type:uuid;index"`
	LetterID        *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentDate     time.Time       `gorm:"not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Mode            string          `gorm:"type:varchar(20);not null"`
	ReferenceNumber string          `gorm:"type:varchar(100)"`
	Remarks         string          `gorm:"type:text"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Received'"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *ledger.Payment {
	return &ledger.Payment{
		BaseEntity:      m.BaseModel.ToDomain(),
		ProjectID:       m.ProjectID,
		UnitID:          m.UnitID,
		BillID:          m.BillID,
		LetterID:        m.LetterID,
		PaymentDate:     m.PaymentDate,
		Amount:          m.Amount,
		Mode:            ledger.PaymentMode(m.Mode),
		ReferenceNumber: m.ReferenceNumber,
		Remarks:         m.Remarks,
		Status:          ledger.PaymentStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Payment.
func (m *PaymentModel) FromDomain(p *ledger.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.ProjectID = p.ProjectID
	m.UnitID = p.UnitID
	m.BillID = p.BillID
	m.LetterID = p.LetterID
	m.PaymentDate = p.PaymentDate
	m.Amount = p.Amount
	m.Mode = p.Mode.String()
	m.ReferenceNumber = p.ReferenceNumber
	m.Remarks = p.Remarks
	m.Status = p.Status.String()
}

// PaymentModelFromDomain creates a persistence model from a domain Payment.
func PaymentModelFromDomain(p *ledger.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// ReceiptModel is the persistence model for the Receipt entity.
type ReceiptModel struct {
	BaseModel
	PaymentID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ReceiptNumber string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	ReceiptDate   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the persistence model to a domain Receipt.
func (m *ReceiptModel) ToDomain() *ledger.Receipt {
	return &ledger.Receipt{
		BaseEntity:    m.BaseModel.ToDomain(),
		PaymentID:     m.PaymentID,
		ReceiptNumber: m.ReceiptNumber,
		ReceiptDate:   m.ReceiptDate,
	}
}

// ReceiptModelFromDomain creates a persistence model from a domain Receipt.
func ReceiptModelFromDomain(r *ledger.Receipt) *ReceiptModel {
	m := &ReceiptModel{}
	m.FromDomainBaseEntity(r.BaseEntity)
	m.PaymentID = r.PaymentID
	m.ReceiptNumber = r.ReceiptNumber
	m.ReceiptDate = r.ReceiptDate
	return m
}
