package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/domain/society"
	"go.uber.org/zap"
)

// GenerateBillsInput carries the parameters for one invoice-style billing run
type GenerateBillsInput struct {
	ProjectID         uuid.UUID               `json:"project_id" binding:"required"`
	BillMonth         int                     `json:"bill_month" binding:"required,min=1,max=12"`
	BillYear          int                     `json:"bill_year" binding:"required"`
	FinancialYear     string                  `json:"financial_year" binding:"required"`
	BillDate          time.Time               `json:"bill_date" binding:"required"`
	DueDate           time.Time               `json:"due_date" binding:"required"`
	AdditionalCharges billing.ChargeBreakdown `json:"additional_charges"`
	OverrideRate      *decimal.Decimal        `json:"override_rate,omitempty"`
}

// AddOnInput is one named line item supplied with a letter generation run
type AddOnInput struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// GenerateLettersInput carries the parameters for one letter-style billing run
type GenerateLettersInput struct {
	ProjectID     uuid.UUID        `json:"project_id" binding:"required"`
	FinancialYear string           `json:"financial_year" binding:"required"`
	LetterDate    time.Time        `json:"letter_date" binding:"required"`
	DueDate       time.Time        `json:"due_date" binding:"required"`
	AddOns        []AddOnInput     `json:"add_ons,omitempty"`
	OverrideRate  *decimal.Decimal `json:"override_rate,omitempty"`
}

// BillGenerationService generates billing documents for every billable unit
// of a project in a single all-or-nothing batch.
type BillGenerationService struct {
	txScope            TransactionScope
	bungalowMultiplier decimal.Decimal
	logger             *zap.Logger
}

// NewBillGenerationService creates a new BillGenerationService.
// bungalowMultiplier scales the base charge for bungalow-type units.
func NewBillGenerationService(txScope TransactionScope, bungalowMultiplier decimal.Decimal, logger *zap.Logger) *BillGenerationService {
	if bungalowMultiplier.LessThanOrEqual(decimal.Zero) {
		bungalowMultiplier = decimal.NewFromInt(1)
	}
	return &BillGenerationService{
		txScope:            txScope,
		bungalowMultiplier: bungalowMultiplier,
		logger:             logger,
	}
}

// GenerateBills creates one invoice-style bill per billable unit of the
// project for the given month. The previous unpaid bill's total is carried
// forward as arrears. The whole batch runs in one transaction: a failure on
// any unit rolls back every bill already inserted.
func (s *BillGenerationService) GenerateBills(ctx context.Context, input GenerateBillsInput) (int, error) {
	if input.BillMonth < 1 || input.BillMonth > 12 {
		return 0, shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Bill month must be 1-12, got %d", input.BillMonth))
	}

	generated := 0
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		units, err := s.billableUnits(ctx, repos, input.ProjectID)
		if err != nil {
			return err
		}

		resolver := NewRateResolverService(repos.RateRepo())
		rates := map[society.UnitType]*ResolvedRate{}

		for _, unit := range units {
			rate, ok := rates[unit.UnitType]
			if !ok {
				rate, err = resolver.Resolve(ctx, input.ProjectID, input.FinancialYear, unit.UnitType, input.OverrideRate)
				if err != nil {
					return err
				}
				rates[unit.UnitType] = rate
			}

			exists, err := repos.BillRepo().ExistsForUnitPeriod(ctx, unit.ID, input.BillMonth, input.BillYear)
			if err != nil {
				return err
			}
			if exists {
				return shared.NewDomainError("ALREADY_EXISTS",
					fmt.Sprintf("Bill already exists for unit %s in period %02d/%d", unit.UnitNumber, input.BillMonth, input.BillYear))
			}

			base := s.baseCharge(unit, rate.RatePerSqft)
			discount := base.Mul(rate.DiscountPercentage).Div(decimal.NewFromInt(100))

			arrears, err := s.previousArrears(ctx, repos, unit.ID)
			if err != nil {
				return err
			}

			bill, err := billing.NewBill(
				input.ProjectID, unit.ID,
				input.BillMonth, input.BillYear, input.FinancialYear,
				base, input.AdditionalCharges, arrears, discount,
				input.BillDate, input.DueDate,
			)
			if err != nil {
				return err
			}
			if err := repos.BillRepo().Save(ctx, bill); err != nil {
				return err
			}
			generated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("bill batch generated",
		zap.String("project_id", input.ProjectID.String()),
		zap.Int("bill_month", input.BillMonth),
		zap.Int("bill_year", input.BillYear),
		zap.Int("count", generated))
	return generated, nil
}

// GenerateLetters creates one letter-style document per billable unit of the
// project for the given financial year. Letters carry named add-ons instead of
// fixed charge columns and do not carry arrears forward.
func (s *BillGenerationService) GenerateLetters(ctx context.Context, input GenerateLettersInput) (int, error) {
	generated := 0
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		units, err := s.billableUnits(ctx, repos, input.ProjectID)
		if err != nil {
			return err
		}

		resolver := NewRateResolverService(repos.RateRepo())
		rates := map[society.UnitType]*ResolvedRate{}

		for _, unit := range units {
			rate, ok := rates[unit.UnitType]
			if !ok {
				rate, err = resolver.Resolve(ctx, input.ProjectID, input.FinancialYear, unit.UnitType, input.OverrideRate)
				if err != nil {
					return err
				}
				rates[unit.UnitType] = rate
			}

			exists, err := repos.LetterRepo().ExistsForUnitYear(ctx, unit.ID, input.FinancialYear)
			if err != nil {
				return err
			}
			if exists {
				return shared.NewDomainError("ALREADY_EXISTS",
					fmt.Sprintf("Letter already exists for unit %s in financial year %s", unit.UnitNumber, input.FinancialYear))
			}

			base := s.baseCharge(unit, rate.RatePerSqft)
			discount := base.Mul(rate.DiscountPercentage).Div(decimal.NewFromInt(100))

			letter, err := billing.NewLetter(
				input.ProjectID, unit.ID, input.FinancialYear,
				base, discount, input.LetterDate, input.DueDate,
			)
			if err != nil {
				return err
			}
			for _, addOn := range input.AddOns {
				if _, err := letter.AttachAddOn(addOn.Name, addOn.Amount); err != nil {
					return err
				}
			}
			if err := repos.LetterRepo().Save(ctx, letter); err != nil {
				return err
			}
			generated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("letter batch generated",
		zap.String("project_id", input.ProjectID.String()),
		zap.String("financial_year", input.FinancialYear),
		zap.Int("count", generated))
	return generated, nil
}

// billableUnits loads the project's units and keeps the billable ones,
// distinguishing an empty project from one with only ineligible units.
func (s *BillGenerationService) billableUnits(ctx context.Context, repos TransactionalRepositories, projectID uuid.UUID) ([]*society.Unit, error) {
	units, err := repos.UnitRepo().FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, shared.NewDomainError("NO_UNITS",
			fmt.Sprintf("Project %s has no units", projectID))
	}
	billable := make([]*society.Unit, 0, len(units))
	for _, unit := range units {
		if unit.Status.IsBillable() {
			billable = append(billable, unit)
		}
	}
	if len(billable) == 0 {
		return nil, shared.NewDomainError("NO_ELIGIBLE_UNITS",
			fmt.Sprintf("Project %s has no units eligible for billing", projectID))
	}
	return billable, nil
}

// baseCharge computes area times rate, scaled for bungalow-type units
func (s *BillGenerationService) baseCharge(unit *society.Unit, ratePerSqft decimal.Decimal) decimal.Decimal {
	base := unit.AreaSqft.Mul(ratePerSqft)
	if unit.IsBungalow() {
		base = base.Mul(s.bungalowMultiplier)
	}
	return base
}

// previousArrears returns the total of the unit's most recent unpaid bill,
// or zero when the unit has no unpaid history.
func (s *BillGenerationService) previousArrears(ctx context.Context, repos TransactionalRepositories, unitID uuid.UUID) (decimal.Decimal, error) {
	previous, err := repos.BillRepo().FindLatestUnpaidByUnit(ctx, unitID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return previous.Total, nil
}
