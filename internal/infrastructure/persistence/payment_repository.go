package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/ledger"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPaymentRepository implements ledger.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Save persists a new payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing payment
func (r *GormPaymentRepository) Update(ctx context.Context, payment *ledger.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	result := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Where("id = ?", payment.ID).
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

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProject returns all payments recorded under a project
func (r *GormPaymentRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*ledger.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("payment_date DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(paymentModels), nil
}

// FindByUnit returns all payments for a unit
func (r *GormPaymentRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*ledger.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("payment_date DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return toDomainPayments(paymentModels), nil
}

// Delete removes a payment row
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByUnit removes all payments for a unit
func (r *GormPaymentRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "unit_id = ?", unitID).Error
}

// DeleteByProject removes all payments under a project
func (r *GormPaymentRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "project_id = ?", projectID).Error
}

// UnlinkBillsByUnit nulls out bill/letter links on a unit's payments
func (r *GormPaymentRepository) UnlinkBillsByUnit(ctx context.Context, unitID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Where("unit_id = ?", unitID).
		Updates(map[string]interface{}{"bill_id": nil, "letter_id": nil}).Error
}

// UnlinkBillsByProject nulls out bill/letter links on a project's payments
func (r *GormPaymentRepository) UnlinkBillsByProject(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Where("project_id = ?", projectID).
		Updates(map[string]interface{}{"bill_id": nil, "letter_id": nil}).Error
}

func toDomainPayments(paymentModels []models.PaymentModel) []*ledger.Payment {
	payments := make([]*ledger.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToDomain()
	}
	return payments
}

// GormReceiptRepository implements ledger.ReceiptRepository using GORM
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GormReceiptRepository
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Save persists a new receipt
func (r *GormReceiptRepository) Save(ctx context.Context, receipt *ledger.Receipt) error {
	model := models.ReceiptModelFromDomain(receipt)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a receipt by its ID
func (r *GormReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Receipt, error) {
	var model models.ReceiptModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPayment finds the receipt issued for a payment
func (r *GormReceiptRepository) FindByPayment(ctx context.Context, paymentID uuid.UUID) (*ledger.Receipt, error) {
	var model models.ReceiptModel
	if err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByPayment removes the receipt issued for a payment, if any
func (r *GormReceiptRepository) DeleteByPayment(ctx context.Context, paymentID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.ReceiptModel{}, "payment_id = ?", paymentID).Error
}

// DeleteByUnit removes receipts owned by a unit's payments
func (r *GormReceiptRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	subquery := r.db.Model(&models.PaymentModel{}).
		Select("id").
		Where("unit_id = ?", unitID)
	return r.db.WithContext(ctx).
		Where("payment_id IN (?)", subquery).
		Delete(&models.ReceiptModel{}).Error
}

// DeleteByProject removes receipts owned by a project's payments
func (r *GormReceiptRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	subquery := r.db.Model(&models.PaymentModel{}).
		Select("id").
		Where("project_id = ?", projectID)
	return r.db.WithContext(ctx).
		Where("payment_id IN (?)", subquery).
		Delete(&models.ReceiptModel{}).Error
}
