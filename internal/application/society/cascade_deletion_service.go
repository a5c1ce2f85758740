package society

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// cascadeStep is one ordered edge of the deletion graph. Children are removed
// before their owners so no step ever leaves a dangling reference.
type cascadeStep struct {
	name string
	run  func(ctx context.Context, repos TransactionalRepositories, id uuid.UUID) error
}

// CascadeDeletionService removes a project or unit together with everything
// it transitively owns: rates, slabs, bills, letters, add-ons, payments and
// receipts. Each deletion runs in a single transaction; a failure at any step
// rolls back the whole cascade.
type CascadeDeletionService struct {
	txScope TransactionScope
	logger  *zap.Logger

	unitSteps    []cascadeStep
	projectSteps []cascadeStep
}

// NewCascadeDeletionService creates a new CascadeDeletionService
func NewCascadeDeletionService(txScope TransactionScope, logger *zap.Logger) *CascadeDeletionService {
	s := &CascadeDeletionService{txScope: txScope, logger: logger}
	s.unitSteps = []cascadeStep{
		{"unlink payments", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.PaymentRepo().UnlinkBillsByUnit(ctx, id)
		}},
		{"delete receipts", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.ReceiptRepo().DeleteByUnit(ctx, id)
		}},
		{"delete payments", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.PaymentRepo().DeleteByUnit(ctx, id)
		}},
		{"delete add-ons", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.LetterRepo().DeleteAddOnsByUnit(ctx, id)
		}},
		{"delete bills", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.BillRepo().DeleteByUnit(ctx, id)
		}},
		{"delete letters", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.LetterRepo().DeleteByUnit(ctx, id)
		}},
		{"delete unit", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.UnitRepo().Delete(ctx, id)
		}},
	}
	s.projectSteps = []cascadeStep{
		{"unlink payments", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.PaymentRepo().UnlinkBillsByProject(ctx, id)
		}},
		{"delete receipts", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.ReceiptRepo().DeleteByProject(ctx, id)
		}},
		{"delete payments", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.PaymentRepo().DeleteByProject(ctx, id)
		}},
		{"delete add-ons", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.LetterRepo().DeleteAddOnsByProject(ctx, id)
		}},
		{"delete bills", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.BillRepo().DeleteByProject(ctx, id)
		}},
		{"delete letters", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.LetterRepo().DeleteByProject(ctx, id)
		}},
		{"delete units", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.UnitRepo().DeleteByProject(ctx, id)
		}},
		{"delete slabs", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.RateRepo().DeleteSlabsByProject(ctx, id)
		}},
		{"delete rates", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.RateRepo().DeleteByProject(ctx, id)
		}},
		{"delete project", func(ctx context.Context, r TransactionalRepositories, id uuid.UUID) error {
			return r.ProjectRepo().Delete(ctx, id)
		}},
	}
	return s
}

// DeleteProject removes a project and everything it owns in one transaction.
// A missing project returns not-found, so a retried deletion is safe.
func (s *CascadeDeletionService) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.ProjectRepo().ExistsByID(ctx, projectID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.ErrNotFound
		}
		return s.runSteps(ctx, repos, s.projectSteps, projectID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.String("project_id", projectID.String()))
	return nil
}

// DeleteUnit removes a unit and everything it owns in one transaction
func (s *CascadeDeletionService) DeleteUnit(ctx context.Context, unitID uuid.UUID) error {
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.UnitRepo().FindByID(ctx, unitID); err != nil {
			return err
		}
		return s.runSteps(ctx, repos, s.unitSteps, unitID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("unit deleted", zap.String("unit_id", unitID.String()))
	return nil
}

func (s *CascadeDeletionService) runSteps(ctx context.Context, repos TransactionalRepositories, steps []cascadeStep, id uuid.UUID) error {
	for _, step := range steps {
		if err := step.run(ctx, repos, id); err != nil {
			return fmt.Errorf("cascade step %q: %w", step.name, err)
		}
	}
	return nil
}

// ProjectCascadeOrder returns the ordered step names of the project deletion graph
func (s *CascadeDeletionService) ProjectCascadeOrder() []string {
	return stepNames(s.projectSteps)
}

// UnitCascadeOrder returns the ordered step names of the unit deletion graph
func (s *CascadeDeletionService) UnitCascadeOrder() []string {
	return stepNames(s.unitSteps)
}

func stepNames(steps []cascadeStep) []string {
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.name
	}
	return names
}
