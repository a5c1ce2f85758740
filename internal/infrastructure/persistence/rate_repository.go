package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/domain/society"
	"github.com/societyerp/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRateRepository implements billing.RateRepository using GORM
type GormRateRepository struct {
	db *gorm.DB
}

// NewGormRateRepository creates a new GormRateRepository
func NewGormRateRepository(db *gorm.DB) *GormRateRepository {
	return &GormRateRepository{db: db}
}

// Save persists a new maintenance rate together with its slabs
func (r *GormRateRepository) Save(ctx context.Context, rate *billing.MaintenanceRate) error {
	model := models.MaintenanceRateModelFromDomain(rate)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	for i := range rate.Slabs {
		if err := r.SaveSlab(ctx, &rate.Slabs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Update persists changes to an existing rate
func (r *GormRateRepository) Update(ctx context.Context, rate *billing.MaintenanceRate) error {
	model := models.MaintenanceRateModelFromDomain(rate)
	result := r.db.WithContext(ctx).Model(&models.MaintenanceRateModel{}).
		Where("id = ?", rate.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a rate by its ID
func (r *GormRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.MaintenanceRate, error) {
	var model models.MaintenanceRateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.withSlabs(ctx, &model)
}

// FindByProjectYear resolves the stored rate for a (project, financial year)
// pair. A unit-type-specific rate wins over a generic one when unitType is set.
func (r *GormRateRepository) FindByProjectYear(ctx context.Context, projectID uuid.UUID, financialYear string, unitType society.UnitType) (*billing.MaintenanceRate, error) {
	var model models.MaintenanceRateModel

	if unitType != "" {
		err := r.db.WithContext(ctx).
			Where("project_id = ? AND financial_year = ? AND unit_type = ?", projectID, financialYear, string(unitType)).
			First(&model).Error
		if err == nil {
			return r.withSlabs(ctx, &model)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	err := r.db.WithContext(ctx).
		Where("project_id = ? AND financial_year = ? AND (unit_type IS NULL OR unit_type = '')", projectID, financialYear).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.withSlabs(ctx, &model)
}

// FindByProject returns all rates configured under a project
func (r *GormRateRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*billing.MaintenanceRate, error) {
	var rateModels []models.MaintenanceRateModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("financial_year").
		Find(&rateModels).Error; err != nil {
		return nil, err
	}
	rates := make([]*billing.MaintenanceRate, len(rateModels))
	for i := range rateModels {
		rate, err := r.withSlabs(ctx, &rateModels[i])
		if err != nil {
			return nil, err
		}
		rates[i] = rate
	}
	return rates, nil
}

// SaveSlab persists a slab under its rate
func (r *GormRateRepository) SaveSlab(ctx context.Context, slab *billing.MaintenanceSlab) error {
	model := models.MaintenanceSlabModelFromDomain(slab)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindEarlyPaymentSlab returns the early-payment slab attached to a rate
func (r *GormRateRepository) FindEarlyPaymentSlab(ctx context.Context, rateID uuid.UUID) (*billing.MaintenanceSlab, error) {
	var model models.MaintenanceSlabModel
	if err := r.db.WithContext(ctx).
		Where("rate_id = ? AND is_early_payment = ?", rateID, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete removes a rate and its slabs
func (r *GormRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&models.MaintenanceSlabModel{}, "rate_id = ?", id).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&models.MaintenanceRateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByProject removes all rates under a project
func (r *GormRateRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.MaintenanceRateModel{}, "project_id = ?", projectID).Error
}

// DeleteSlabsByProject removes all slabs owned by the project's rates
func (r *GormRateRepository) DeleteSlabsByProject(ctx context.Context, projectID uuid.UUID) error {
	subquery := r.db.Model(&models.MaintenanceRateModel{}).
		Select("id").
		Where("project_id = ?", projectID)
	return r.db.WithContext(ctx).
		Where("rate_id IN (?)", subquery).
		Delete(&models.MaintenanceSlabModel{}).Error
}

func (r *GormRateRepository) withSlabs(ctx context.Context, model *models.MaintenanceRateModel) (*billing.MaintenanceRate, error) {
	rate := model.ToDomain()
	var slabModels []models.MaintenanceSlabModel
	if err := r.db.WithContext(ctx).
		Where("rate_id = ?", rate.ID).
		Find(&slabModels).Error; err != nil {
		return nil, err
	}
	for i := range slabModels {
		rate.Slabs = append(rate.Slabs, *slabModels[i].ToDomain())
	}
	return rate, nil
}
