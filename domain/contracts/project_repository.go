package contracts

import (
	"context"

	"dsadmin/domain/dataset"
)

// GetProjectsOptions selects, filters and orders a page of Projects.
type GetProjectsOptions struct {
	Page      int
	PageSize  int
	SortField string
	SortOrder SortOrder
	Search    string
}

// ProjectRepository defines operations over the remote Project collection
// (category options of the project category).
type ProjectRepository interface {
	// Get retrieves one page of Projects, each populated with its DataSets.
	Get(ctx context.Context, options GetProjectsOptions) (*dataset.Paginated[dataset.Project], error)

	// GetAll retrieves every Project, paging through the full collection.
	GetAll(ctx context.Context) ([]dataset.Project, error)
}
