package persistence

import (
	"context"

	appsociety "github.com/societyerp/backend/internal/application/society"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/ledger"
	"github.com/societyerp/backend/internal/domain/society"
	"gorm.io/gorm"
)

// GormSocietyTransactionScope implements the society TransactionScope using
// GORM transactions. Cascading deletions walk every aggregate, so this scope
// exposes all repositories.
type GormSocietyTransactionScope struct {
	db *gorm.DB
}

// NewGormSocietyTransactionScope creates a new GormSocietyTransactionScope
func NewGormSocietyTransactionScope(db *gorm.DB) *GormSocietyTransactionScope {
	return &GormSocietyTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormSocietyTransactionScope) Execute(ctx context.Context, fn func(repos appsociety.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSocietyTransactionalRepositories{tx: tx})
	})
}

type gormSocietyTransactionalRepositories struct {
	tx *gorm.DB
}

// ProjectRepo returns the project repository scoped to the current transaction.
func (r *gormSocietyTransactionalRepositories) ProjectRepo() society.ProjectRepository {
	return NewGormProjectRepository(r.tx)
}

// UnitRepo returns the unit repository scoped to the current transaction.
func (r *gormSocietyTransactionalRepositories) UnitRepo() society.UnitRepository {
	return NewGormUnitRepository(r.tx)
}

// RateRepo returns the maintenance rate repository scoped to the current transaction.
func (r *gormSocietyTransactionalRepositories) RateRepo() billing.RateRepository {
	return NewGormRateRepository(r.tx)
}

// BillRepo returns the bill repository scoped to the current transaction.
func (r *gormSocietyTransactionalRepositories) BillRepo() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}

// LetterRepo returns the letter repository scoped to the current transaction.
func (r *gormSocietyTransactionalRepositories) LetterRepo() billing.LetterRepository {
	return NewGormLetterRepository(r.tx)
}

// PaymentRepo returns the payment repository scoped to the current transaction.
func (r *gormSocietyTransactionalRepositories) PaymentRepo() ledger.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// ReceiptRepo returns the receipt repository scoped to the current transaction.
func (r *gormSocietyTransactionalRepositories) ReceiptRepo() ledger.ReceiptRepository {
	return NewGormReceiptRepository(r.tx)
}

var _ appsociety.TransactionScope = (*GormSocietyTransactionScope)(nil)
var _ appsociety.TransactionalRepositories = (*gormSocietyTransactionalRepositories)(nil)
