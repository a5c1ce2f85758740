package ledger

import (
	"context"

	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to ledger repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories a ledger
// operation needs within a single transaction. Recording or deleting a
// payment also touches the billing document it settles, so the bill and
// letter repositories share the transaction.
type TransactionalRepositories interface {
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() ledger.PaymentRepository
	// ReceiptRepo returns the receipt repository scoped to the current transaction
	ReceiptRepo() ledger.ReceiptRepository
	// BillRepo returns the bill repository scoped to the current transaction
	BillRepo() billing.BillRepository
	// LetterRepo returns the letter repository scoped to the current transaction
	LetterRepo() billing.LetterRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	paymentRepo ledger.PaymentRepository
	receiptRepo ledger.ReceiptRepository
	billRepo    billing.BillRepository
	letterRepo  billing.LetterRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	paymentRepo ledger.PaymentRepository,
	receiptRepo ledger.ReceiptRepository,
	billRepo billing.BillRepository,
	letterRepo billing.LetterRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
		billRepo:    billRepo,
		letterRepo:  letterRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PaymentRepo returns the payment repository.
func (s *NoOpTransactionScope) PaymentRepo() ledger.PaymentRepository {
	return s.paymentRepo
}

// ReceiptRepo returns the receipt repository.
func (s *NoOpTransactionScope) ReceiptRepo() ledger.ReceiptRepository {
	return s.receiptRepo
}

// BillRepo returns the bill repository.
func (s *NoOpTransactionScope) BillRepo() billing.BillRepository {
	return s.billRepo
}

// LetterRepo returns the letter repository.
func (s *NoOpTransactionScope) LetterRepo() billing.LetterRepository {
	return s.letterRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
