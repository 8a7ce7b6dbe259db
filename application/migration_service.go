package application

import (
	"context"
	"strings"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/logging"
)

// MigrateResult reports which DataSets a project migration matched.
type MigrateResult struct {
	WithProjects    []dataset.DataSet
	WithoutProjects []dataset.DataSet
}

// MigrationService assigns Projects to legacy DataSets by matching project
// names inside DataSet names, then persists the matched DataSets.
type MigrationService struct {
	dataSets contracts.DataSetRepository
	projects contracts.ProjectRepository
	logger   *logging.Logger
}

// NewMigrationService creates a migration service.
func NewMigrationService(dataSets contracts.DataSetRepository, projects contracts.ProjectRepository) *MigrationService {
	return &MigrationService{
		dataSets: dataSets,
		projects: projects,
		logger:   logging.Default().WithComponent("migration_service"),
	}
}

// MigrateProjects loads every DataSet and Project, assigns each DataSet the
// first Project whose name occurs in the DataSet name, and saves the
// matched DataSets. Unmatched DataSets are reported, not modified.
func (s *MigrationService) MigrateProjects(ctx context.Context) (*MigrateResult, error) {
	s.logger.Info("loading dataSets and projects")
	dataSets, err := s.dataSets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &MigrateResult{}
	for _, ds := range dataSets {
		if project := matchProject(ds, projects); project != nil {
			ds.Project = project
			result.WithProjects = append(result.WithProjects, ds)
		} else {
			result.WithoutProjects = append(result.WithoutProjects, ds)
		}
	}

	s.logger.Info("project matching finished",
		"with_projects", len(result.WithProjects),
		"without_projects", len(result.WithoutProjects),
	)

	if err := s.dataSets.Save(ctx, result.WithProjects); err != nil {
		return nil, err
	}
	return result, nil
}

func matchProject(ds dataset.DataSet, projects []dataset.Project) *dataset.Project {
	for _, project := range projects {
		if strings.Contains(ds.Name, project.Name) {
			p := project
			p.DataSets = nil
			return &p
		}
	}
	return nil
}
