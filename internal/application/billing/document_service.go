package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
	"go.uber.org/zap"
)

// DocumentService renders billing documents through a pluggable renderer and
// records the stored path on the document. Rendering never alters amounts.
type DocumentService struct {
	renderer    billing.DocumentRenderer
	billRepo    billing.BillRepository
	letterRepo  billing.LetterRepository
	projectRepo society.ProjectRepository
	unitRepo    society.UnitRepository
	logger      *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	renderer billing.DocumentRenderer,
	billRepo billing.BillRepository,
	letterRepo billing.LetterRepository,
	projectRepo society.ProjectRepository,
	unitRepo society.UnitRepository,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		renderer:    renderer,
		billRepo:    billRepo,
		letterRepo:  letterRepo,
		projectRepo: projectRepo,
		unitRepo:    unitRepo,
		logger:      logger,
	}
}

// RenderBill renders one bill and records the resulting document path
func (s *DocumentService) RenderBill(ctx context.Context, billID uuid.UUID) (string, error) {
	bill, err := s.billRepo.FindByID(ctx, billID)
	if err != nil {
		return "", err
	}
	project, err := s.projectRepo.FindByID(ctx, bill.ProjectID)
	if err != nil {
		return "", err
	}
	unit, err := s.unitRepo.FindByID(ctx, bill.UnitID)
	if err != nil {
		return "", err
	}

	path, err := s.renderer.RenderBill(ctx, bill, project, unit)
	if err != nil {
		return "", err
	}
	bill.SetDocumentPath(path)
	if err := s.billRepo.Update(ctx, bill); err != nil {
		return "", err
	}
	s.logger.Info("bill document rendered",
		zap.String("bill_id", billID.String()),
		zap.String("path", path))
	return path, nil
}

// RenderLetter renders one letter and records the resulting document path
func (s *DocumentService) RenderLetter(ctx context.Context, letterID uuid.UUID) (string, error) {
	letter, err := s.letterRepo.FindByID(ctx, letterID)
	if err != nil {
		return "", err
	}
	project, err := s.projectRepo.FindByID(ctx, letter.ProjectID)
	if err != nil {
		return "", err
	}
	unit, err := s.unitRepo.FindByID(ctx, letter.UnitID)
	if err != nil {
		return "", err
	}

	path, err := s.renderer.RenderLetter(ctx, letter, project, unit)
	if err != nil {
		return "", err
	}
	letter.SetDocumentPath(path)
	if err := s.letterRepo.Update(ctx, letter); err != nil {
		return "", err
	}
	s.logger.Info("letter document rendered",
		zap.String("letter_id", letterID.String()),
		zap.String("path", path))
	return path, nil
}
