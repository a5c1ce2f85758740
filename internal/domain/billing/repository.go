package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/society"
)

// RateRepository defines the persistence interface for maintenance rates and slabs
type RateRepository interface {
	Save(ctx context.Context, rate *MaintenanceRate) error
	Update(ctx context.Context, rate *MaintenanceRate) error
	FindByID(ctx context.Context, id uuid.UUID) (*MaintenanceRate, error)
	// FindByProjectYear resolves the stored rate for a (project, financial year)
	// pair, preferring a unit-type-specific rate when unitType is non-empty.
	FindByProjectYear(ctx context.Context, projectID uuid.UUID, financialYear string, unitType society.UnitType) (*MaintenanceRate, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*MaintenanceRate, error)
	SaveSlab(ctx context.Context, slab *MaintenanceSlab) error
	// FindEarlyPaymentSlab returns the early-payment slab attached to a rate,
	// or shared.ErrNotFound if the rate has none.
	FindEarlyPaymentSlab(ctx context.Context, rateID uuid.UUID) (*MaintenanceSlab, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
	DeleteSlabsByProject(ctx context.Context, projectID uuid.UUID) error
}

// BillRepository defines the persistence interface for invoice-style bills
type BillRepository interface {
	Save(ctx context.Context, bill *Bill) error
	Update(ctx context.Context, bill *Bill) error
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*Bill, error)
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*Bill, error)
	// FindByUnitPeriod looks up the bill for a (unit, month, year) key,
	// the uniqueness key for both generation and import.
	FindByUnitPeriod(ctx context.Context, unitID uuid.UUID, billMonth, billYear int) (*Bill, error)
	ExistsForUnitPeriod(ctx context.Context, unitID uuid.UUID, billMonth, billYear int) (bool, error)
	// FindLatestUnpaidByUnit returns the most recent unpaid bill for a unit,
	// used for arrears carry-forward. shared.ErrNotFound if none.
	FindLatestUnpaidByUnit(ctx context.Context, unitID uuid.UUID) (*Bill, error)
	// FindOverdueUnpaid returns unpaid bills whose due date is in the past.
	// A nil projectID sweeps all projects.
	FindOverdueUnpaid(ctx context.Context, projectID *uuid.UUID) ([]*Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUnit(ctx context.Context, unitID uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// LetterRepository defines the persistence interface for letter-style documents
type LetterRepository interface {
	Save(ctx context.Context, letter *Letter) error
	Update(ctx context.Context, letter *Letter) error
	FindByID(ctx context.Context, id uuid.UUID) (*Letter, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*Letter, error)
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*Letter, error)
	FindByUnitYear(ctx context.Context, unitID uuid.UUID, financialYear string) (*Letter, error)
	ExistsForUnitYear(ctx context.Context, unitID uuid.UUID, financialYear string) (bool, error)
	FindOverdueUnpaid(ctx context.Context, projectID *uuid.UUID) ([]*Letter, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUnit(ctx context.Context, unitID uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
	DeleteAddOnsByUnit(ctx context.Context, unitID uuid.UUID) error
	DeleteAddOnsByProject(ctx context.Context, projectID uuid.UUID) error
}
