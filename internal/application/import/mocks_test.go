package importapp

import (
	"context"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/billing"
	"github.com/societyerp/backend/internal/domain/society"
	"github.com/stretchr/testify/mock"
)

// Mock implementations

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Save(ctx context.Context, project *society.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) Update(ctx context.Context, project *society.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *mockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*society.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*society.Project), args.Error(1)
}

func (m *mockProjectRepository) FindAll(ctx context.Context) ([]*society.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*society.Project), args.Error(1)
}

func (m *mockProjectRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockUnitRepository struct {
	mock.Mock
}

func (m *mockUnitRepository) Save(ctx context.Context, unit *society.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *mockUnitRepository) Update(ctx context.Context, unit *society.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *mockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*society.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*society.Unit), args.Error(1)
}

func (m *mockUnitRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*society.Unit, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*society.Unit), args.Error(1)
}

func (m *mockUnitRepository) FindBillableByProject(ctx context.Context, projectID uuid.UUID) ([]*society.Unit, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*society.Unit), args.Error(1)
}

func (m *mockUnitRepository) FindByProjectAndNumber(ctx context.Context, projectID uuid.UUID, unitNumber string) (*society.Unit, error) {
	args := m.Called(ctx, projectID, unitNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*society.Unit), args.Error(1)
}

func (m *mockUnitRepository) FindByProjectAndPlot(ctx context.Context, projectID uuid.UUID, plotNumber, bungalowNumber string) (*society.Unit, error) {
	args := m.Called(ctx, projectID, plotNumber, bungalowNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*society.Unit), args.Error(1)
}

func (m *mockUnitRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUnitRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

type mockBillRepository struct {
	mock.Mock
}

func (m *mockBillRepository) Save(ctx context.Context, bill *billing.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *mockBillRepository) Update(ctx context.Context, bill *billing.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *mockBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*billing.Bill, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*billing.Bill, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindByUnitPeriod(ctx context.Context, unitID uuid.UUID, billMonth, billYear int) (*billing.Bill, error) {
	args := m.Called(ctx, unitID, billMonth, billYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) ExistsForUnitPeriod(ctx context.Context, unitID uuid.UUID, billMonth, billYear int) (bool, error) {
	args := m.Called(ctx, unitID, billMonth, billYear)
	return args.Bool(0), args.Error(1)
}

func (m *mockBillRepository) FindLatestUnpaidByUnit(ctx context.Context, unitID uuid.UUID) (*billing.Bill, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindOverdueUnpaid(ctx context.Context, projectID *uuid.UUID) ([]*billing.Bill, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBillRepository) DeleteByUnit(ctx context.Context, unitID uuid.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *mockBillRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}
