package contracts

import (
	"context"

	"dsadmin/domain/dataset"
)

// SortOrder is the direction of a list query sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// GetDataSetsOptions selects, filters and orders a page of DataSets.
type GetDataSetsOptions struct {
	Page            int
	PageSize        int
	SortField       string
	SortOrder       SortOrder
	Search          string
	IDs             []string
	ProjectIDs      []string
	IncludeOrgUnits bool
}

// DataSetRepository defines operations over the remote DataSet collection.
type DataSetRepository interface {
	// Get retrieves one page of fully aggregated DataSets.
	Get(ctx context.Context, options GetDataSetsOptions) (*dataset.Paginated[dataset.DataSet], error)

	// GetAll retrieves every DataSet, paging through the full collection.
	GetAll(ctx context.Context) ([]dataset.DataSet, error)

	// GetByIDs retrieves the DataSets with the given ids, in chunked batches.
	GetByIDs(ctx context.Context, ids []string) ([]dataset.DataSet, error)

	// Save persists the given DataSets in chunked batches. Each DataSet is
	// merged over its current remote state before posting.
	Save(ctx context.Context, dataSets []dataset.DataSet) error

	// Remove deletes the DataSets with the given ids in chunked batches.
	Remove(ctx context.Context, ids []string) error
}
