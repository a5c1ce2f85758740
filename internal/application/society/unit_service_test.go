package society

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/domain/society"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitServiceCreateUnit(t *testing.T) {
	t.Run("creates a unit under an existing project", func(t *testing.T) {
		unitRepo := new(mockUnitRepository)
		projectRepo := new(mockProjectRepository)

		project, err := society.NewProject("Green Meadows", "Pune")
		require.NoError(t, err)
		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)
		unitRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		service := NewUnitService(unitRepo, projectRepo)

		unit, err := service.CreateUnit(context.Background(), CreateUnitRequest{
			ProjectID:      project.ID,
			UnitNumber:     "B-7",
			BungalowNumber: "B-7",
			OwnerName:      "Asha Kulkarni",
			AreaSqft:       decimal.NewFromInt(1800),
			UnitType:       "bungalow",
		})

		require.NoError(t, err)
		assert.Equal(t, society.UnitTypeBungalow, unit.UnitType)
		assert.Equal(t, society.UnitStatusActive, unit.Status)
		assert.Equal(t, "B-7", unit.BungalowNumber)
		unitRepo.AssertExpectations(t)
	})

	t.Run("fails when the project does not exist", func(t *testing.T) {
		unitRepo := new(mockUnitRepository)
		projectRepo := new(mockProjectRepository)

		projectID := uuid.New()
		projectRepo.On("FindByID", mock.Anything, projectID).Return(nil, shared.ErrNotFound)

		service := NewUnitService(unitRepo, projectRepo)

		_, err := service.CreateUnit(context.Background(), CreateUnitRequest{
			ProjectID:  projectID,
			UnitNumber: "A-1",
		})

		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
		unitRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		unitRepo := new(mockUnitRepository)
		projectRepo := new(mockProjectRepository)

		project, err := society.NewProject("Green Meadows", "Pune")
		require.NoError(t, err)
		projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

		service := NewUnitService(unitRepo, projectRepo)

		_, err = service.CreateUnit(context.Background(), CreateUnitRequest{
			ProjectID:  project.ID,
			UnitNumber: "A-1",
			Status:     "demolished",
		})

		require.Error(t, err)
		assert.Equal(t, "INVALID_UNIT_STATUS", shared.ErrorCode(err))
	})
}

func TestUnitServiceUpdateUnit(t *testing.T) {
	t.Run("updates the unit's mutable fields", func(t *testing.T) {
		unitRepo := new(mockUnitRepository)
		projectRepo := new(mockProjectRepository)

		unit, err := society.NewUnit(uuid.New(), "A-1", "Old Owner", decimal.NewFromInt(1000), society.UnitTypePlot, society.UnitStatusActive)
		require.NoError(t, err)
		unitRepo.On("FindByID", mock.Anything, unit.ID).Return(unit, nil)
		unitRepo.On("Update", mock.Anything, unit).Return(nil)

		service := NewUnitService(unitRepo, projectRepo)

		updated, err := service.UpdateUnit(context.Background(), unit.ID, UpdateUnitRequest{
			UnitNumber: "A-1",
			PlotNumber: "P-14",
			OwnerName:  "New Owner",
			AreaSqft:   decimal.NewFromInt(1200),
			UnitType:   "plot",
			Status:     "vacant",
		})

		require.NoError(t, err)
		assert.Equal(t, "New Owner", updated.OwnerName)
		assert.Equal(t, "P-14", updated.PlotNumber)
		assert.Equal(t, society.UnitStatusVacant, updated.Status)
		assert.True(t, updated.AreaSqft.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("missing unit returns not found", func(t *testing.T) {
		unitRepo := new(mockUnitRepository)
		projectRepo := new(mockProjectRepository)

		unitID := uuid.New()
		unitRepo.On("FindByID", mock.Anything, unitID).Return(nil, shared.ErrNotFound)

		service := NewUnitService(unitRepo, projectRepo)

		_, err := service.UpdateUnit(context.Background(), unitID, UpdateUnitRequest{UnitNumber: "A-1", Status: "active"})

		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})
}
