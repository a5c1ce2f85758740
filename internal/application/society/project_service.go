package society

import (
	"context"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/society"
)

// CreateProjectRequest carries the parameters for creating a project
type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required,max=200"`
	Address     string               `json:"address"`
	BankDetails *society.BankDetails `json:"bank_details,omitempty"`
}

// UpdateProjectRequest carries the parameters for updating a project
type UpdateProjectRequest struct {
	Name        string               `json:"name" binding:"required,max=200"`
	Address     string               `json:"address"`
	BankDetails *society.BankDetails `json:"bank_details,omitempty"`
}

// ProjectService provides application-level project operations
type ProjectService struct {
	projectRepo society.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo society.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(ctx context.Context, req CreateProjectRequest) (*society.Project, error) {
	project, err := society.NewProject(req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	if req.BankDetails != nil {
		project.SetBankDetails(*req.BankDetails)
	}
	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject updates an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, req UpdateProjectRequest) (*society.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := project.Update(req.Name, req.Address); err != nil {
		return nil, err
	}
	if req.BankDetails != nil {
		project.SetBankDetails(*req.BankDetails)
	}
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject returns a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*society.Project, error) {
	return s.projectRepo.FindByID(ctx, id)
}

// ListProjects returns all projects
func (s *ProjectService) ListProjects(ctx context.Context) ([]*society.Project, error) {
	return s.projectRepo.FindAll(ctx)
}
