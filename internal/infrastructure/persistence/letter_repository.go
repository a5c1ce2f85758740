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

// GormLetterRepository implements billing.LetterRepository using GORM
type GormLetterRepository struct {
	db *gorm.DB
}

// NewGormLetterRepository creates a new GormLetterRepository
func NewGormLetterRepository(db *gorm.DB) *GormLetterRepository {
	return &GormLetterRepository{db: db}
}

// Save persists a new letter together with its add-ons
func (r *GormLetterRepository) Save(ctx context.Context, letter *billing.Letter) error {
	model := models.LetterModelFromDomain(letter)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing letter. Add-on rows are replaced.
func (r *GormLetterRepository) Update(ctx context.Context, letter *billing.Letter) error {
	model := models.LetterModelFromDomain(letter)
	result := r.db.WithContext(ctx).Model(&models.LetterModel{}).
		Where("id = ?", letter.ID).
		Select("*").
		Omit("id", "created_at", "AddOns").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	if err := r.db.WithContext(ctx).
		Delete(&models.AddOnModel{}, "letter_id = ?", letter.ID).Error; err != nil {
		return err
	}
	for i := range letter.AddOns {
		addOnModel := models.AddOnModelFromDomain(&letter.AddOns[i])
		if err := r.db.WithContext(ctx).Create(addOnModel).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindByID finds a letter by its ID, including add-ons
func (r *GormLetterRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Letter, error) {
	var model models.LetterModel
	if err := r.db.WithContext(ctx).
		Preload("AddOns").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProject returns all letters raised under a project
func (r *GormLetterRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*billing.Letter, error) {
	var letterModels []models.LetterModel
	if err := r.db.WithContext(ctx).
		Preload("AddOns").
		Where("project_id = ?", projectID).
		Order("financial_year").
		Find(&letterModels).Error; err != nil {
		return nil, err
	}
	return toDomainLetters(letterModels), nil
}

// FindByUnit returns all letters for a unit
func (r *GormLetterRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*billing.Letter, error) {
	var letterModels []models.LetterModel
	if err := r.db.WithContext(ctx).
		Preload("AddOns").
		Where("unit_id = ?", unitID).
		Order("financial_year").
		Find(&letterModels).Error; err != nil {
		return nil, err
	}
	return toDomainLetters(letterModels), nil
}

// FindByUnitYear looks up the letter for a (unit, financial year) key
func (r *GormLetterRepository) FindByUnitYear(ctx context.Context, unitID uuid.UUID, financialYear string) (*billing.Letter, error) {
	var model models.LetterModel
	if err := r.db.WithContext(ctx).
		Preload("AddOns").
		Where("unit_id = ? AND financial_year = ?", unitID, financialYear).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsForUnitYear reports whether a letter already exists for the year key
func (r *GormLetterRepository) ExistsForUnitYear(ctx context.Context, unitID uuid.UUID, financialYear string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LetterModel{}).
		Where("unit_id = ? AND financial_year = ?", unitID, financialYear).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindOverdueUnpaid returns unpaid letters past their due date
func (r *GormLetterRepository) FindOverdueUnpaid(ctx context.Context, projectID *uuid.UUID) ([]*billing.Letter, error) {
	query := r.db.WithContext(ctx).
		Preload("AddOns").
		Where("status <> ? AND due_date < ?", billing.BillStatusPaid.String(), time.Now())
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	var letterModels []models.LetterModel
	if err := query.Find(&letterModels).Error; err != nil {
		return nil, err
	}
	return toDomainLetters(letterModels), nil
}

// Delete removes a letter row and its add-ons
func (r *GormLetterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&models.AddOnModel{}, "letter_id = ?", id).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&models.LetterModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByUnit removes all letters for a unit
func (r *GormLetterRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.LetterModel{}, "unit_id = ?", unitID).Error
}

// DeleteByProject removes all letters under a project
func (r *GormLetterRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.LetterModel{}, "project_id = ?", projectID).Error
}

// DeleteAddOnsByUnit removes add-ons owned by a unit's letters
func (r *GormLetterRepository) DeleteAddOnsByUnit(ctx context.Context, unitID uuid.UUID) error {
	subquery := r.db.Model(&models.LetterModel{}).
		Select("id").
		Where("unit_id = ?", unitID)
	return r.db.WithContext(ctx).
		Where("letter_id IN (?)", subquery).
		Delete(&models.AddOnModel{}).Error
}

// DeleteAddOnsByProject removes add-ons owned by a project's letters
func (r *GormLetterRepository) DeleteAddOnsByProject(ctx context.Context, projectID uuid.UUID) error {
	subquery := r.db.Model(&models.LetterModel{}).
		Select("id").
		Where("project_id = ?", projectID)
	return r.db.WithContext(ctx).
		Where("letter_id IN (?)", subquery).
		Delete(&models.AddOnModel{}).Error
}

func toDomainLetters(letterModels []models.LetterModel) []*billing.Letter {
	letters := make([]*billing.Letter, len(letterModels))
	for i := range letterModels {
		letters[i] = letterModels[i].ToDomain()
	}
	return letters
}
