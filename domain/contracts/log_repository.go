package contracts

import (
	"context"

	"dsadmin/domain/dataset"
)

// LogRepository reads the audit log kept in the remote datastore.
type LogRepository interface {
	// GetByDataSets retrieves the current log page filtered to entries
	// touching any of the given DataSet ids.
	GetByDataSets(ctx context.Context, dataSetIDs []string) ([]dataset.Log, error)
}
