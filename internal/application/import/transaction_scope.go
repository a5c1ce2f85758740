package importapp

import (
	"context"

	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
)

// TransactionScope provides transactional access to the repositories a ledger
// import needs. The whole import runs in one transaction so a storage-level
// fault never leaves a half-applied ledger behind.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the import repositories within
// a transaction. Imports read the project, create or merge units, and upsert
// bills.
type TransactionalRepositories interface {
	// ProjectRepo returns the project repository scoped to the current transaction
	ProjectRepo() society.ProjectRepository
	// UnitRepo returns the unit repository scoped to the current transaction
	UnitRepo() society.UnitRepository
	// BillRepo returns the bill repository scoped to the current transaction
	BillRepo() billing.BillRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	projectRepo society.ProjectRepository
	unitRepo    society.UnitRepository
	billRepo    billing.BillRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	projectRepo society.ProjectRepository,
	unitRepo society.UnitRepository,
	billRepo billing.BillRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		projectRepo: projectRepo,
		unitRepo:    unitRepo,
		billRepo:    billRepo,
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

// BillRepo returns the bill repository.
func (s *NoOpTransactionScope) BillRepo() billing.BillRepository {
	return s.billRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
