package billing

import (
	"context"

	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
)

// TransactionScope provides transactional access to billing repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories a billing
// batch needs within a single transaction. Bill generation reads units and
// rates and writes bills/letters, so all four share the transaction.
type TransactionalRepositories interface {
	// UnitRepo returns the unit repository scoped to the current transaction
	UnitRepo() society.UnitRepository
	// RateRepo returns the maintenance rate repository scoped to the current transaction
	RateRepo() billing.RateRepository
	// BillRepo returns the bill repository scoped to the current transaction
	BillRepo() billing.BillRepository
	// LetterRepo returns the letter repository scoped to the current transaction
	LetterRepo() billing.LetterRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	unitRepo   society.UnitRepository
	rateRepo   billing.RateRepository
	billRepo   billing.BillRepository
	letterRepo billing.LetterRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	unitRepo society.UnitRepository,
	rateRepo billing.RateRepository,
	billRepo billing.BillRepository,
	letterRepo billing.LetterRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		unitRepo:   unitRepo,
		rateRepo:   rateRepo,
		billRepo:   billRepo,
		letterRepo: letterRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
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

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
