package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
)

// SlabInput is one slab supplied when configuring a rate
type SlabInput struct {
	DueDate            time.Time       `json:"due_date" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsEarlyPayment     bool            `json:"is_early_payment"`
}

// CreateRateRequest carries the parameters for configuring a maintenance rate
type CreateRateRequest struct {
	ProjectID        uuid.UUID       `json:"project_id" binding:"required"`
	FinancialYear    string          `json:"financial_year" binding:"required"`
	UnitType         string          `json:"unit_type"`
	RatePerSqft      decimal.Decimal `json:"rate_per_sqft" binding:"required"`
	BillingFrequency string          `json:"billing_frequency" binding:"required"`
	Slabs            []SlabInput     `json:"slabs,omitempty"`
}

// RateService provides application-level maintenance rate operations
type RateService struct {
	rateRepo    billing.RateRepository
	projectRepo society.ProjectRepository
}

// NewRateService creates a new RateService
func NewRateService(rateRepo billing.RateRepository, projectRepo society.ProjectRepository) *RateService {
	return &RateService{rateRepo: rateRepo, projectRepo: projectRepo}
}

// CreateRate configures a maintenance rate with its slabs for a project
func (s *RateService) CreateRate(ctx context.Context, req CreateRateRequest) (*billing.MaintenanceRate, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	frequency, err := billing.ParseBillingFrequency(req.BillingFrequency)
	if err != nil {
		return nil, err
	}
	rate, err := billing.NewMaintenanceRate(req.ProjectID, req.FinancialYear, req.RatePerSqft, frequency)
	if err != nil {
		return nil, err
	}
	if req.UnitType != "" {
		if err := rate.ForUnitType(society.ParseUnitType(req.UnitType)); err != nil {
			return nil, err
		}
	}
	for _, input := range req.Slabs {
		slab, err := billing.NewMaintenanceSlab(rate.ID, input.DueDate, input.DiscountPercentage, input.IsEarlyPayment)
		if err != nil {
			return nil, err
		}
		rate.Slabs = append(rate.Slabs, *slab)
	}

	if err := s.rateRepo.Save(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

// GetRate returns a rate by ID, including slabs
func (s *RateService) GetRate(ctx context.Context, id uuid.UUID) (*billing.MaintenanceRate, error) {
	return s.rateRepo.FindByID(ctx, id)
}

// ListRates returns all rates configured for a project
func (s *RateService) ListRates(ctx context.Context, projectID uuid.UUID) ([]*billing.MaintenanceRate, error) {
	return s.rateRepo.FindByProject(ctx, projectID)
}

// DeleteRate removes a rate and its slabs
func (s *RateService) DeleteRate(ctx context.Context, id uuid.UUID) error {
	return s.rateRepo.Delete(ctx, id)
}
