package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/billing"
)

// DocumentQueryService provides read access to generated bills and letters
type DocumentQueryService struct {
	billRepo   billing.BillRepository
	letterRepo billing.LetterRepository
}

// NewDocumentQueryService creates a new DocumentQueryService
func NewDocumentQueryService(billRepo billing.BillRepository, letterRepo billing.LetterRepository) *DocumentQueryService {
	return &DocumentQueryService{billRepo: billRepo, letterRepo: letterRepo}
}

// GetBill returns a bill by ID
func (s *DocumentQueryService) GetBill(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	return s.billRepo.FindByID(ctx, id)
}

// ListBillsByProject returns a project's bills in period order
func (s *DocumentQueryService) ListBillsByProject(ctx context.Context, projectID uuid.UUID) ([]*billing.Bill, error) {
	return s.billRepo.FindByProject(ctx, projectID)
}

// ListBillsByUnit returns a unit's bills in period order
func (s *DocumentQueryService) ListBillsByUnit(ctx context.Context, unitID uuid.UUID) ([]*billing.Bill, error) {
	return s.billRepo.FindByUnit(ctx, unitID)
}

// GetLetter returns a letter by ID, including add-ons
func (s *DocumentQueryService) GetLetter(ctx context.Context, id uuid.UUID) (*billing.Letter, error) {
	return s.letterRepo.FindByID(ctx, id)
}

// ListLettersByProject returns a project's letters by financial year
func (s *DocumentQueryService) ListLettersByProject(ctx context.Context, projectID uuid.UUID) ([]*billing.Letter, error) {
	return s.letterRepo.FindByProject(ctx, projectID)
}

// ListLettersByUnit returns a unit's letters by financial year
func (s *DocumentQueryService) ListLettersByUnit(ctx context.Context, unitID uuid.UUID) ([]*billing.Letter, error) {
	return s.letterRepo.FindByUnit(ctx, unitID)
}
