package persistence

import (
	"context"

	appbilling "github.com/societyerp/backend/internal/application/billing"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
	"gorm.io/gorm"
)

// GormBillingTransactionScope implements the billing TransactionScope using
// GORM transactions, so a whole billing batch commits or rolls back as one.
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new GormBillingTransactionScope
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBillingTransactionalRepositories{tx: tx})
	})
}

type gormBillingTransactionalRepositories struct {
	tx *gorm.DB
}

// UnitRepo returns the unit repository scoped to the current transaction.
func (r *gormBillingTransactionalRepositories) UnitRepo() society.UnitRepository {
	return NewGormUnitRepository(r.tx)
}

// RateRepo returns the maintenance rate repository scoped to the current transaction.
func (r *gormBillingTransactionalRepositories) RateRepo() billing.RateRepository {
	return NewGormRateRepository(r.tx)
}

// BillRepo returns the bill repository scoped to the current transaction.
func (r *gormBillingTransactionalRepositories) BillRepo() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}

// LetterRepo returns the letter repository scoped to the current transaction.
func (r *gormBillingTransactionalRepositories) LetterRepo() billing.LetterRepository {
	return NewGormLetterRepository(r.tx)
}

var _ appbilling.TransactionScope = (*GormBillingTransactionScope)(nil)
var _ appbilling.TransactionalRepositories = (*gormBillingTransactionalRepositories)(nil)
