package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/domain/society"
)

// ResolvedRate is the outcome of rate resolution for one billing run
type ResolvedRate struct {
	RatePerSqft        decimal.Decimal          `json:"rate_per_sqft"`
	DiscountPercentage decimal.Decimal          `json:"discount_percentage"`
	BillingFrequency   billing.BillingFrequency `json:"billing_frequency,omitempty"`
	RateID             *uuid.UUID               `json:"rate_id,omitempty"`
}

// RateResolverService resolves the effective rate and early-payment discount
// for a (project, financial year) pair.
//
// An override rate always supplies the rate itself, but the stored rate's
// early-payment slab discount is still honored when a stored rate exists.
type RateResolverService struct {
	rateRepo billing.RateRepository
}

// NewRateResolverService creates a new RateResolverService
func NewRateResolverService(rateRepo billing.RateRepository) *RateResolverService {
	return &RateResolverService{rateRepo: rateRepo}
}

// Resolve returns the effective rate for the project and financial year.
// A non-nil overrideRate takes precedence over the stored rate per sqft.
// With neither an override nor a stored rate the resolution fails with a
// not-found error naming the project and year.
func (s *RateResolverService) Resolve(ctx context.Context, projectID uuid.UUID, financialYear string, unitType society.UnitType, overrideRate *decimal.Decimal) (*ResolvedRate, error) {
	stored, err := s.rateRepo.FindByProjectYear(ctx, projectID, financialYear, unitType)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if stored == nil {
		if overrideRate == nil {
			return nil, shared.NewDomainError("RATE_NOT_FOUND",
				fmt.Sprintf("No maintenance rate configured for project %s in financial year %s", projectID, financialYear))
		}
		return &ResolvedRate{
			RatePerSqft:        *overrideRate,
			DiscountPercentage: decimal.Zero,
		}, nil
	}

	resolved := &ResolvedRate{
		RatePerSqft:      stored.RatePerSqft,
		BillingFrequency: stored.BillingFrequency,
		RateID:           &stored.ID,
	}
	if overrideRate != nil {
		resolved.RatePerSqft = *overrideRate
	}
	if slab := stored.EarlyPaymentSlab(); slab != nil {
		resolved.DiscountPercentage = slab.DiscountPercentage
	}
	return resolved, nil
}
