package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/domain/society"
	"github.com/societyerp/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// billableStatuses are the unit statuses eligible for bill generation,
// matched case-insensitively against stored rows.
var billableStatuses = []string{"active", "occupied", "vacant"}

// GormUnitRepository implements society.UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// Save persists a new unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *society.Unit) error {
	model := models.UnitModelFromDomain(unit)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing unit
func (r *GormUnitRepository) Update(ctx context.Context, unit *society.Unit) error {
	model := models.UnitModelFromDomain(unit)
	result := r.db.WithContext(ctx).Model(&models.UnitModel{}).
		Where("id = ?", unit.ID).
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a unit by its ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*society.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProject returns all units of a project
func (r *GormUnitRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*society.Unit, error) {
	var unitModels []models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("unit_number").
		Find(&unitModels).Error; err != nil {
		return nil, err
	}
	return toDomainUnits(unitModels), nil
}

// FindBillableByProject returns the project's units whose status permits billing
func (r *GormUnitRepository) FindBillableByProject(ctx context.Context, projectID uuid.UUID) ([]*society.Unit, error) {
	var unitModels []models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND LOWER(status) IN ?", projectID, billableStatuses).
		Order("unit_number").
		Find(&unitModels).Error; err != nil {
		return nil, err
	}
	return toDomainUnits(unitModels), nil
}

// FindByProjectAndNumber finds a unit by its unit number within a project
func (r *GormUnitRepository) FindByProjectAndNumber(ctx context.Context, projectID uuid.UUID, unitNumber string) (*society.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND unit_number = ?", projectID, unitNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProjectAndPlot finds a unit by plot/bungalow identifiers within a project.
// Both identifiers must match; empty identifiers are treated as absent.
func (r *GormUnitRepository) FindByProjectAndPlot(ctx context.Context, projectID uuid.UUID, plotNumber, bungalowNumber string) (*society.Unit, error) {
	if plotNumber == "" && bungalowNumber == "" {
		return nil, shared.ErrNotFound
	}
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if plotNumber != "" {
		query = query.Where("plot_number = ?", plotNumber)
	}
	if bungalowNumber != "" {
		query = query.Where("bungalow_number = ?", bungalowNumber)
	}
	var model models.UnitModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// CountByProject returns the number of units under a project
func (r *GormUnitRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UnitModel{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a unit row
func (r *GormUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UnitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByProject removes all units under a project
func (r *GormUnitRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.UnitModel{}, "project_id = ?", projectID).Error
}

func toDomainUnits(unitModels []models.UnitModel) []*society.Unit {
	units := make([]*society.Unit, len(unitModels))
	for i := range unitModels {
		units[i] = unitModels[i].ToDomain()
	}
	return units
}
