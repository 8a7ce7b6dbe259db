package application

import (
	"context"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
)

// LogService reads audit logs and enriches them with DataSet details.
type LogService struct {
	dataSets contracts.DataSetRepository
	logs     contracts.LogRepository
}

// NewLogService creates a log service.
func NewLogService(dataSets contracts.DataSetRepository, logs contracts.LogRepository) *LogService {
	return &LogService{dataSets: dataSets, logs: logs}
}

// GetForDataSets retrieves the log entries touching the given DataSets,
// with each entry's references joined against the freshly fetched DataSets.
func (s *LogService) GetForDataSets(ctx context.Context, dataSetIDs []string) ([]dataset.Log, error) {
	dataSets, err := s.dataSets.GetByIDs(ctx, dataSetIDs)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(dataSets))
	for _, ds := range dataSets {
		ids = append(ids, ds.ID)
	}

	logs, err := s.logs.GetByDataSets(ctx, ids)
	if err != nil {
		return nil, err
	}
	return dataset.WithDataSetDetails(logs, dataSets), nil
}
