package society

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines the persistence interface for projects
type ProjectRepository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindAll(ctx context.Context) ([]*Project, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitRepository defines the persistence interface for units
type UnitRepository interface {
	Save(ctx context.Context, unit *Unit) error
	Update(ctx context.Context, unit *Unit) error
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*Unit, error)
	// FindBillableByProject returns units whose status permits billing
	// (active/occupied/vacant, matched case-insensitively).
	FindBillableByProject(ctx context.Context, projectID uuid.UUID) ([]*Unit, error)
	FindByProjectAndNumber(ctx context.Context, projectID uuid.UUID, unitNumber string) (*Unit, error)
	// FindByProjectAndPlot matches a unit by its plot/bungalow identifiers,
	// the primary match key for imported ledger rows.
	FindByProjectAndPlot(ctx context.Context, projectID uuid.UUID, plotNumber, bungalowNumber string) (*Unit, error)
	CountByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
