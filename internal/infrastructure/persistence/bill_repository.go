package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBillRepository implements billing.BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// Save persists a new bill
func (r *GormBillRepository) Save(ctx context.Context, bill *billing.Bill) error {
	model := models.BillModelFromDomain(bill)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing bill
func (r *GormBillRepository) Update(ctx context.Context, bill *billing.Bill) error {
	model := models.BillModelFromDomain(bill)
	result := r.db.WithContext(ctx).Model(&models.BillModel{}).
		Where("id = ?", bill.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a bill by its ID
func (r *GormBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProject returns all bills raised under a project
func (r *GormBillRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*billing.Bill, error) {
	var billModels []models.BillModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("bill_year, bill_month").
		Find(&billModels).Error; err != nil {
		return nil, err
	}
	return toDomainBills(billModels), nil
}

// FindByUnit returns all bills for a unit
func (r *GormBillRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*billing.Bill, error) {
	var billModels []models.BillModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("bill_year, bill_month").
		Find(&billModels).Error; err != nil {
		return nil, err
	}
	return toDomainBills(billModels), nil
}

// FindByUnitPeriod looks up the bill for a (unit, month, year) key
func (r *GormBillRepository) FindByUnitPeriod(ctx context.Context, unitID uuid.UUID, billMonth, billYear int) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ? AND bill_month = ? AND bill_year = ?", unitID, billMonth, billYear).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsForUnitPeriod reports whether a bill already exists for the period key
func (r *GormBillRepository) ExistsForUnitPeriod(ctx context.Context, unitID uuid.UUID, billMonth, billYear int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BillModel{}).
		Where("unit_id = ? AND bill_month = ? AND bill_year = ?", unitID, billMonth, billYear).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindLatestUnpaidByUnit returns the most recent unpaid bill for a unit,
// used for arrears carry-forward.
func (r *GormBillRepository) FindLatestUnpaidByUnit(ctx context.Context, unitID uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ? AND status <> ?", unitID, billing.BillStatusPaid.String()).
		Order("bill_year DESC, bill_month DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOverdueUnpaid returns unpaid bills past their due date.
// A nil projectID sweeps all projects.
func (r *GormBillRepository) FindOverdueUnpaid(ctx context.Context, projectID *uuid.UUID) ([]*billing.Bill, error) {
	query := r.db.WithContext(ctx).
		Where("status <> ? AND due_date < ?", billing.BillStatusPaid.String(), time.Now())
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	var billModels []models.BillModel
	if err := query.Find(&billModels).Error; err != nil {
		return nil, err
	}
	return toDomainBills(billModels), nil
}

// Delete removes a bill row
func (r *GormBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByUnit removes all bills for a unit
func (r *GormBillRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BillModel{}, "unit_id = ?", unitID).Error
}

// DeleteByProject removes all bills under a project
func (r *GormBillRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.BillModel{}, "project_id = ?", projectID).Error
}

func toDomainBills(billModels []models.BillModel) []*billing.Bill {
	bills := make([]*billing.Bill, len(billModels))
	for i := range billModels {
		bills[i] = billModels[i].ToDomain()
	}
	return bills
}
