package society

import (
	"context"

	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/ledger"
	"github.com/societyerp/backend/internal/domain/society"
)

// TransactionScope provides transactional access to society repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to every repository touched by a
// cascading deletion. Deleting a project or unit walks the full ownership
// graph, so all aggregate repositories share the transaction.
type TransactionalRepositories interface {
	// ProjectRepo returns the project repository scoped to the current transaction
	ProjectRepo() society.ProjectRepository
	// UnitRepo returns the unit repository scoped to the current transaction
	UnitRepo() society.UnitRepository
	// RateRepo returns the maintenance rate repository scoped to the current transaction
	RateRepo() billing.RateRepository
	// BillRepo returns the bill repository scoped to the current transaction
	BillRepo() billing.BillRepository
	// LetterRepo returns the letter repository scoped to the current transaction
	LetterRepo() billing.LetterRepository
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() ledger.PaymentRepository
	// ReceiptRepo returns the receipt repository scoped to the current transaction
	ReceiptRepo() ledger.ReceiptRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	projectRepo society.ProjectRepository
	unitRepo    society.UnitRepository
	rateRepo    billing.RateRepository
	billRepo    billing.BillRepository
	letterRepo  billing.LetterRepository
	paymentRepo ledger.PaymentRepository
	receiptRepo ledger.ReceiptRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	projectRepo society.ProjectRepository,
	unitRepo society.UnitRepository,
	rateRepo billing.RateRepository,
	billRepo billing.BillRepository,
	letterRepo billing.LetterRepository,
	paymentRepo ledger.PaymentRepository,
	receiptRepo ledger.ReceiptRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		projectRepo: projectRepo,
		unitRepo:    unitRepo,
		rateRepo:    rateRepo,
		billRepo:    billRepo,
		letterRepo:  letterRepo,
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProjectRepo returns the project repository.
func (s *NoOpTransactionScope) ProjectRepo() society.ProjectRepository {
	return s.projectRepo
}

// UnitRepo returns the unit repository.
func (s *NoOpTransactionScope) UnitRepo() society.UnitRepository {
	return s.unitRepo
}

// RateRepo returns the maintenance rate repository.
func (s *NoOpTransactionScope) RateRepo() billing.RateRepository {
	return s.rateRepo
}

// BillRepo returns the bill repository.
func (s *NoOpTransactionScope) BillRepo() billing.BillRepository {
	return s.billRepo
}

// LetterRepo returns the letter repository.
func (s *NoOpTransactionScope) LetterRepo() billing.LetterRepository {
	return s.letterRepo
}

// PaymentRepo returns the payment repository.
func (s *NoOpTransactionScope) PaymentRepo() ledger.PaymentRepository {
	return s.paymentRepo
}

// ReceiptRepo returns the receipt repository.
func (s *NoOpTransactionScope) ReceiptRepo() ledger.ReceiptRepository {
	return s.receiptRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
