package application

import (
	"context"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
)

// ProjectService exposes the Projects grouping view.
type ProjectService struct {
	projects contracts.ProjectRepository
}

// NewProjectService creates a project service.
func NewProjectService(projects contracts.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// Get retrieves one page of Projects with their DataSets.
func (s *ProjectService) Get(ctx context.Context, options contracts.GetProjectsOptions) (*dataset.Paginated[dataset.Project], error) {
	return s.projects.Get(ctx, options)
}

// GetAll retrieves every Project.
func (s *ProjectService) GetAll(ctx context.Context) ([]dataset.Project, error) {
	return s.projects.GetAll(ctx)
}
