package ledger

import (
	"context"

	"github.com/google/uuid"
)

// PaymentRepository defines the persistence interface for payments
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*Payment, error)
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUnit(ctx context.Context, unitID uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
	// UnlinkBillsByUnit / UnlinkBillsByProject null out payment->document links
	// that would otherwise dangle during a cascade delete.
	UnlinkBillsByUnit(ctx context.Context, unitID uuid.UUID) error
	UnlinkBillsByProject(ctx context.Context, projectID uuid.UUID) error
}

// ReceiptRepository defines the persistence interface for receipts
type ReceiptRepository interface {
	Save(ctx context.Context, receipt *Receipt) error
	FindByID(ctx context.Context, id uuid.UUID) (*Receipt, error)
	FindByPayment(ctx context.Context, paymentID uuid.UUID) (*Receipt, error)
	DeleteByPayment(ctx context.Context, paymentID uuid.UUID) error
	DeleteByUnit(ctx context.Context, unitID uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
