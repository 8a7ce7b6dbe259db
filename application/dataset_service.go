package application

import (
	"context"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/logging"
)

// SaveOrgUnitsOptions describes a bulk org-unit edit.
type SaveOrgUnitsOptions struct {
	DataSetIDs []string
	OrgUnitIDs []string
	Mode       dataset.OrgUnitMode
}

// DataSetService orchestrates DataSet reads and bulk edits: each operation
// fetches fresh aggregates, applies a pure domain transform and saves the
// result.
type DataSetService struct {
	dataSets contracts.DataSetRepository
	logger   *logging.Logger
}

// NewDataSetService creates a DataSet service.
func NewDataSetService(dataSets contracts.DataSetRepository) *DataSetService {
	return &DataSetService{
		dataSets: dataSets,
		logger:   logging.Default().WithComponent("dataset_service"),
	}
}

// Get retrieves one page of DataSets.
func (s *DataSetService) Get(ctx context.Context, options contracts.GetDataSetsOptions) (*dataset.Paginated[dataset.DataSet], error) {
	return s.dataSets.Get(ctx, options)
}

// GetByIDs retrieves the DataSets with the given ids.
func (s *DataSetService) GetByIDs(ctx context.Context, ids []string) ([]dataset.DataSet, error) {
	return s.dataSets.GetByIDs(ctx, ids)
}

// Remove deletes the DataSets with the given ids on the remote instance.
func (s *DataSetService) Remove(ctx context.Context, ids []string) error {
	return s.dataSets.Remove(ctx, ids)
}

// SaveOrgUnits applies a bulk org-unit edit. A single-target edit always
// replaces: with one DataSet the distinction between merge and replace is
// meaningless to the user, and replace is what the edit screen shows.
func (s *DataSetService) SaveOrgUnits(ctx context.Context, options SaveOrgUnitsOptions) error {
	dataSets, err := s.dataSets.GetByIDs(ctx, options.DataSetIDs)
	if err != nil {
		return err
	}

	mode := options.Mode
	if len(options.DataSetIDs) == 1 {
		mode = dataset.OrgUnitModeReplace
	}

	updated := dataset.ApplyOrgUnits(dataSets, options.OrgUnitIDs, mode)
	if err := s.dataSets.Save(ctx, updated); err != nil {
		return err
	}
	s.logger.Info("saved org units",
		"datasets", len(updated),
		"org_units", len(options.OrgUnitIDs),
		"mode", string(mode),
	)
	return nil
}

// SaveSharing applies a partial sharing update to the given DataSets and
// returns the updated aggregates. The DataSets are re-fetched first so the
// update lands on current remote state.
func (s *DataSetService) SaveSharing(ctx context.Context, dataSetIDs []string, update dataset.ShareUpdate) ([]dataset.DataSet, error) {
	dataSets, err := s.dataSets.GetByIDs(ctx, dataSetIDs)
	if err != nil {
		return nil, err
	}

	updated := dataset.ApplySharing(dataSets, update)
	if err := s.dataSets.Save(ctx, updated); err != nil {
		return nil, err
	}
	s.logger.Info("saved sharing settings", "datasets", len(updated))
	return updated, nil
}
