package persistence

import (
	"context"

	importapp "github.com/societyerp/backend/internal/application/import"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
	"gorm.io/gorm"
)

// GormImportTransactionScope implements the import TransactionScope using
// GORM transactions. A ledger import commits all of its rows or none.
type GormImportTransactionScope struct {
	db *gorm.DB
}

// NewGormImportTransactionScope creates a new GormImportTransactionScope
func NewGormImportTransactionScope(db *gorm.DB) *GormImportTransactionScope {
	return &GormImportTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormImportTransactionScope) Execute(ctx context.Context, fn func(repos importapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormImportTransactionalRepositories{tx: tx})
	})
}

type gormImportTransactionalRepositories struct {
	tx *gorm.DB
}

// ProjectRepo returns the project repository scoped to the current transaction.
func (r *gormImportTransactionalRepositories) ProjectRepo() society.ProjectRepository {
	return NewGormProjectRepository(r.tx)
}

// UnitRepo returns the unit repository scoped to the current transaction.
func (r *gormImportTransactionalRepositories) UnitRepo() society.UnitRepository {
	return NewGormUnitRepository(r.tx)
}

// BillRepo returns the bill repository scoped to the current transaction.
func (r *gormImportTransactionalRepositories) BillRepo() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}

var _ importapp.TransactionScope = (*GormImportTransactionScope)(nil)
var _ importapp.TransactionalRepositories = (*gormImportTransactionalRepositories)(nil)
