package society

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/society"
)

// CreateUnitRequest carries the parameters for creating a unit
type CreateUnitRequest struct {
	ProjectID      uuid.UUID       `json:"project_id" binding:"required"`
	UnitNumber     string          `json:"unit_number" binding:"required"`
	PlotNumber     string          `json:"plot_number"`
	BungalowNumber string          `json:"bungalow_number"`
	OwnerName      string          `json:"owner_name"`
	AreaSqft       decimal.Decimal `json:"area_sqft"`
	UnitType       string          `json:"unit_type"`
	Status         string          `json:"status"`
}

// UpdateUnitRequest carries the parameters for updating a unit
type UpdateUnitRequest struct {
	UnitNumber     string          `json:"unit_number" binding:"required"`
	PlotNumber     string          `json:"plot_number"`
	BungalowNumber string          `json:"bungalow_number"`
	OwnerName      string          `json:"owner_name"`
	AreaSqft       decimal.Decimal `json:"area_sqft"`
	UnitType       string          `json:"unit_type"`
	Status         string          `json:"status" binding:"required"`
}

// UnitService provides application-level unit operations
type UnitService struct {
	unitRepo    society.UnitRepository
	projectRepo society.ProjectRepository
}

// NewUnitService creates a new UnitService
func NewUnitService(unitRepo society.UnitRepository, projectRepo society.ProjectRepository) *UnitService {
	return &UnitService{unitRepo: unitRepo, projectRepo: projectRepo}
}

// CreateUnit creates a new unit under an existing project
func (s *UnitService) CreateUnit(ctx context.Context, req CreateUnitRequest) (*society.Unit, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	status := society.UnitStatusActive
	if req.Status != "" {
		parsed, err := society.ParseUnitStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	unit, err := society.NewUnit(req.ProjectID, req.UnitNumber, req.OwnerName, req.AreaSqft, society.ParseUnitType(req.UnitType), status)
	if err != nil {
		return nil, err
	}
	unit.PlotNumber = req.PlotNumber
	unit.BungalowNumber = req.BungalowNumber

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// UpdateUnit updates an existing unit
func (s *UnitService) UpdateUnit(ctx context.Context, id uuid.UUID, req UpdateUnitRequest) (*society.Unit, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := society.ParseUnitStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := unit.Update(req.UnitNumber, req.OwnerName, req.AreaSqft, society.ParseUnitType(req.UnitType), status); err != nil {
		return nil, err
	}
	unit.PlotNumber = req.PlotNumber
	unit.BungalowNumber = req.BungalowNumber

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// GetUnit returns a unit by ID
func (s *UnitService) GetUnit(ctx context.Context, id uuid.UUID) (*society.Unit, error) {
	return s.unitRepo.FindByID(ctx, id)
}

// ListUnits returns all units of a project
func (s *UnitService) ListUnits(ctx context.Context, projectID uuid.UUID) ([]*society.Unit, error) {
	return s.unitRepo.FindByProject(ctx, projectID)
}
