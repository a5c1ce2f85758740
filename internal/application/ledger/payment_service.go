package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/ledger"
	"github.com/societyerp/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RecordPaymentRequest carries the parameters for recording one payment
type RecordPaymentRequest struct {
	ProjectID       uuid.UUID       `json:"project_id" binding:"required"`
	UnitID          uuid.UUID       `json:"unit_id" binding:"required"`
	BillID          *uuid.UUID      `json:"bill_id,omitempty"`
	LetterID        *uuid.UUID      `json:"letter_id,omitempty"`
	PaymentDate     time.Time       `json:"payment_date" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Mode            string          `json:"mode" binding:"required"`
	ReferenceNumber string          `json:"reference_number"`
	Remarks         string          `json:"remarks"`
	Pending         bool            `json:"pending"`
	ReceiptNumber   string          `json:"receipt_number"`
}

// RecordPaymentResult is the outcome of a recorded payment
type RecordPaymentResult struct {
	Payment *ledger.Payment `json:"payment"`
	Receipt *ledger.Receipt `json:"receipt,omitempty"`
}

// PaymentService records and deletes payments together with their receipts
// and the status of the billing documents they settle.
//
// A payment may exceed the linked document's outstanding total; overpayments
// are accepted and simply recorded.
type PaymentService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(txScope TransactionScope, logger *zap.Logger) *PaymentService {
	return &PaymentService{txScope: txScope, logger: logger}
}

// RecordPayment validates and stores a payment. Unless the payment is pending
// (an uncleared cheque), a receipt is issued in the same transaction and the
// linked bill or letter is marked paid.
func (s *PaymentService) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*RecordPaymentResult, error) {
	mode, err := ledger.ParsePaymentMode(req.Mode)
	if err != nil {
		return nil, err
	}
	status := ledger.PaymentStatusReceived
	if req.Pending {
		status = ledger.PaymentStatusPending
	}

	payment, err := ledger.NewPayment(req.ProjectID, req.UnitID, req.PaymentDate, req.Amount, mode, status)
	if err != nil {
		return nil, err
	}
	payment.WithReference(req.ReferenceNumber).WithRemarks(req.Remarks)

	if req.BillID != nil && req.LetterID != nil {
		return nil, shared.NewDomainError("INVALID_LINK", "Payment cannot reference both a bill and a letter")
	}

	result := &RecordPaymentResult{Payment: payment}
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if req.BillID != nil {
			bill, err := repos.BillRepo().FindByID(ctx, *req.BillID)
			if err != nil {
				return err
			}
			if err := payment.LinkBill(bill.ID); err != nil {
				return err
			}
			if !payment.IsPending() {
				bill.MarkPaid()
				if err := repos.BillRepo().Update(ctx, bill); err != nil {
					return err
				}
			}
		}
		if req.LetterID != nil {
			letter, err := repos.LetterRepo().FindByID(ctx, *req.LetterID)
			if err != nil {
				return err
			}
			if err := payment.LinkLetter(letter.ID); err != nil {
				return err
			}
			if !payment.IsPending() {
				letter.MarkPaid()
				if err := repos.LetterRepo().Update(ctx, letter); err != nil {
					return err
				}
			}
		}

		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}

		if !payment.IsPending() {
			receipt, err := ledger.NewReceipt(payment.ID, req.ReceiptNumber, req.PaymentDate)
			if err != nil {
				return err
			}
			if err := repos.ReceiptRepo().Save(ctx, receipt); err != nil {
				return err
			}
			result.Receipt = receipt
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("unit_id", payment.UnitID.String()),
		zap.String("amount", payment.Amount.String()),
		zap.String("mode", payment.Mode.String()),
		zap.Bool("pending", payment.IsPending()))
	return result, nil
}

// DeletePayment removes a payment and its receipt. A linked bill or letter is
// reverted to Generated so it can be settled again.
func (s *PaymentService) DeletePayment(ctx context.Context, paymentID uuid.UUID) error {
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return s.deleteOne(ctx, repos, paymentID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("payment deleted", zap.String("payment_id", paymentID.String()))
	return nil
}

// DeletePayments removes several payments in one transaction. Any failure,
// including a missing payment, aborts the whole batch.
func (s *PaymentService) DeletePayments(ctx context.Context, paymentIDs []uuid.UUID) error {
	if len(paymentIDs) == 0 {
		return nil
	}
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, id := range paymentIDs {
			if err := s.deleteOne(ctx, repos, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("payment batch deleted", zap.Int("count", len(paymentIDs)))
	return nil
}

func (s *PaymentService) deleteOne(ctx context.Context, repos TransactionalRepositories, paymentID uuid.UUID) error {
	payment, err := repos.PaymentRepo().FindByID(ctx, paymentID)
	if err != nil {
		return err
	}

	if payment.BillID != nil {
		bill, err := repos.BillRepo().FindByID(ctx, *payment.BillID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if bill != nil {
			bill.RevertToGenerated()
			if err := repos.BillRepo().Update(ctx, bill); err != nil {
				return err
			}
		}
	}
	if payment.LetterID != nil {
		letter, err := repos.LetterRepo().FindByID(ctx, *payment.LetterID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if letter != nil {
			letter.RevertToGenerated()
			if err := repos.LetterRepo().Update(ctx, letter); err != nil {
				return err
			}
		}
	}

	if err := repos.ReceiptRepo().DeleteByPayment(ctx, paymentID); err != nil {
		return err
	}
	return repos.PaymentRepo().Delete(ctx, paymentID)
}

// GetPaymentsByUnit lists a unit's payments, newest first
func (s *PaymentService) GetPaymentsByUnit(ctx context.Context, unitID uuid.UUID) ([]*ledger.Payment, error) {
	var payments []*ledger.Payment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		payments, err = repos.PaymentRepo().FindByUnit(ctx, unitID)
		return err
	})
	return payments, err
}

// GetPaymentsByProject lists a project's payments, newest first
func (s *PaymentService) GetPaymentsByProject(ctx context.Context, projectID uuid.UUID) ([]*ledger.Payment, error) {
	var payments []*ledger.Payment
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		payments, err = repos.PaymentRepo().FindByProject(ctx, projectID)
		return err
	})
	return payments, err
}

// GetReceipt returns the receipt issued for a payment
func (s *PaymentService) GetReceipt(ctx context.Context, paymentID uuid.UUID) (*ledger.Receipt, error) {
	var receipt *ledger.Receipt
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		receipt, err = repos.ReceiptRepo().FindByPayment(ctx, paymentID)
		return err
	})
	return receipt, err
}
