package repositories

import (
	"context"
	"fmt"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/config"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/logging"
)

// allDataSetsPageSize fetches the DataSets of a page of projects in one go;
// the per-project DataSet counts are far below this bound.
const allDataSetsPageSize = 1000000

// D2ProjectRepository implements ProjectRepository over the project
// category's options.
type D2ProjectRepository struct {
	client   dhis2.Client
	metadata *dataset.MetadataItem
	api      *datasetAPI
	chunks   config.ChunkConfig
	logger   *logging.Logger
}

var _ contracts.ProjectRepository = (*D2ProjectRepository)(nil)

// NewD2ProjectRepository creates a Project repository bound to the remote
// instance described by the resolved metadata.
func NewD2ProjectRepository(client dhis2.Client, metadata *dataset.MetadataItem, chunks config.ChunkConfig) *D2ProjectRepository {
	return &D2ProjectRepository{
		client:   client,
		metadata: metadata,
		api:      newDatasetAPI(client, metadata, chunks),
		chunks:   chunks,
		logger:   logging.Default().WithComponent("project_repository"),
	}
}

// Get retrieves one page of Projects, each populated with the DataSets
// whose project attribute points at it.
func (r *D2ProjectRepository) Get(ctx context.Context, options contracts.GetProjectsOptions) (*dataset.Paginated[dataset.Project], error) {
	filters := []string{
		dhis2.Filter("categories.code", "eq", r.metadata.ProjectCategory.Code),
	}
	if options.Search != "" {
		filters = append(filters, dhis2.Filter("identifiable", "token", options.Search))
	}

	res, err := r.client.GetCategoryOptions(ctx, dhis2.Query{
		Fields:   "id,displayName,lastUpdated",
		Filters:  filters,
		Order:    r.buildOrder(options),
		Page:     options.Page,
		PageSize: options.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}

	projects := make([]dataset.Project, 0, len(res.CategoryOptions))
	projectIDs := make([]string, 0, len(res.CategoryOptions))
	for _, co := range res.CategoryOptions {
		project, err := dataset.NewProject(co.ID, co.DisplayName, co.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("build project %q: %w", co.ID, err)
		}
		projects = append(projects, project)
		projectIDs = append(projectIDs, project.ID)
	}

	dataSets, err := r.dataSetsForProjects(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	return &dataset.Paginated[dataset.Project]{
		Page:      res.Pager.Page,
		PageSize:  res.Pager.PageSize,
		PageCount: res.Pager.PageCount,
		Total:     res.Pager.Total,
		Data:      joinProjectDataSets(projects, dataSets),
	}, nil
}

// GetAll walks the whole project collection page by page.
func (r *D2ProjectRepository) GetAll(ctx context.Context) ([]dataset.Project, error) {
	return dhis2.FetchAllPages(r.chunks.ProjectPage,
		func(page, pageSize int) ([]dataset.Project, dhis2.D2Pager, error) {
			res, err := r.Get(ctx, contracts.GetProjectsOptions{
				Page:      page,
				PageSize:  pageSize,
				SortField: "lastUpdated",
				SortOrder: contracts.SortAsc,
			})
			if err != nil {
				return nil, dhis2.D2Pager{}, err
			}
			pager := dhis2.D2Pager{Page: res.Page, PageCount: res.PageCount}
			return res.Data, pager, nil
		})
}

func (r *D2ProjectRepository) dataSetsForProjects(ctx context.Context, projectIDs []string) ([]dataset.DataSet, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	res, err := r.api.get(ctx, contracts.GetDataSetsOptions{
		Page:            1,
		PageSize:        allDataSetsPageSize,
		SortField:       "lastUpdated",
		SortOrder:       contracts.SortDesc,
		ProjectIDs:      projectIDs,
		IncludeOrgUnits: true,
	})
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

func joinProjectDataSets(projects []dataset.Project, dataSets []dataset.DataSet) []dataset.Project {
	out := make([]dataset.Project, 0, len(projects))
	for _, project := range projects {
		var forProject []dataset.DataSet
		for _, ds := range dataSets {
			if ds.Project != nil && ds.Project.ID == project.ID {
				forProject = append(forProject, ds)
			}
		}
		out = append(out, project.WithDataSets(forProject))
	}
	return out
}

func (r *D2ProjectRepository) buildOrder(options contracts.GetProjectsOptions) string {
	if options.SortField == "" {
		return "lastUpdated:desc"
	}
	return fmt.Sprintf("%s:%s", options.SortField, options.SortOrder)
}
