package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/billing"
	"go.uber.org/zap"
)

var daysPerYear = decimal.NewFromInt(365)

// PenaltyAccrualResult summarizes one penalty sweep
type PenaltyAccrualResult struct {
	SweptBills     int `json:"swept_bills"`
	UpdatedBills   int `json:"updated_bills"`
	SweptLetters   int `json:"swept_letters"`
	UpdatedLetters int `json:"updated_letters"`
	FailedUpdates  int `json:"failed_updates"`
}

// PenaltyAccrualService recomputes overdue penalties on unpaid billing
// documents. Penalties use simple interest on the document's base charge:
//
//	penalty = base * annualRate * daysOverdue / 365
//
// A stored penalty never decreases; repeated sweeps are idempotent for the
// same day. The sweep is best effort: a failure on one document is logged
// and does not stop the rest.
type PenaltyAccrualService struct {
	billRepo   billing.BillRepository
	letterRepo billing.LetterRepository
	annualRate decimal.Decimal
	logger     *zap.Logger
}

// NewPenaltyAccrualService creates a new PenaltyAccrualService.
// annualRate is a fraction, e.g. 0.21 for 21% per annum.
func NewPenaltyAccrualService(billRepo billing.BillRepository, letterRepo billing.LetterRepository, annualRate decimal.Decimal, logger *zap.Logger) *PenaltyAccrualService {
	return &PenaltyAccrualService{
		billRepo:   billRepo,
		letterRepo: letterRepo,
		annualRate: annualRate,
		logger:     logger,
	}
}

// AccruePenalties sweeps every overdue unpaid document across all projects
func (s *PenaltyAccrualService) AccruePenalties(ctx context.Context) (*PenaltyAccrualResult, error) {
	return s.accrue(ctx, nil)
}

// AccruePenaltiesForProject sweeps the overdue unpaid documents of one project
func (s *PenaltyAccrualService) AccruePenaltiesForProject(ctx context.Context, projectID uuid.UUID) (*PenaltyAccrualResult, error) {
	return s.accrue(ctx, &projectID)
}

func (s *PenaltyAccrualService) accrue(ctx context.Context, projectID *uuid.UUID) (*PenaltyAccrualResult, error) {
	now := time.Now()
	result := &PenaltyAccrualResult{}

	bills, err := s.billRepo.FindOverdueUnpaid(ctx, projectID)
	if err != nil {
		return nil, err
	}
	result.SweptBills = len(bills)
	for _, bill := range bills {
		penalty := s.computePenalty(bill.BaseCharge, bill.DaysOverdue(now))
		if !bill.ApplyPenalty(penalty) {
			continue
		}
		if err := s.billRepo.Update(ctx, bill); err != nil {
			result.FailedUpdates++
			s.logger.Warn("penalty update failed for bill",
				zap.String("bill_id", bill.ID.String()),
				zap.String("period", bill.PeriodLabel()),
				zap.Error(err))
			continue
		}
		result.UpdatedBills++
	}

	letters, err := s.letterRepo.FindOverdueUnpaid(ctx, projectID)
	if err != nil {
		return nil, err
	}
	result.SweptLetters = len(letters)
	for _, letter := range letters {
		penalty := s.computePenalty(letter.BaseAmount, letter.DaysOverdue(now))
		if !letter.ApplyPenalty(penalty) {
			continue
		}
		if err := s.letterRepo.Update(ctx, letter); err != nil {
			result.FailedUpdates++
			s.logger.Warn("penalty update failed for letter",
				zap.String("letter_id", letter.ID.String()),
				zap.String("financial_year", letter.FinancialYear),
				zap.Error(err))
			continue
		}
		result.UpdatedLetters++
	}

	s.logger.Info("penalty sweep completed",
		zap.Int("swept_bills", result.SweptBills),
		zap.Int("updated_bills", result.UpdatedBills),
		zap.Int("swept_letters", result.SweptLetters),
		zap.Int("updated_letters", result.UpdatedLetters),
		zap.Int("failed_updates", result.FailedUpdates))
	return result, nil
}

// computePenalty applies the simple-interest formula for the given overdue days
func (s *PenaltyAccrualService) computePenalty(base decimal.Decimal, daysOverdue int) decimal.Decimal {
	if daysOverdue <= 0 {
		return decimal.Zero
	}
	return base.
		Mul(s.annualRate).
		Mul(decimal.NewFromInt(int64(daysOverdue))).
		Div(daysPerYear).
		Round(2)
}
