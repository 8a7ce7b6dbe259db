package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/logging"
)

// Datastore addressing for the audit log written by the legacy tooling.
const (
	logsNamespace      = "dataset-configuration"
	logsPageCurrentKey = "logs-page-current"
	logsPagePrefix     = "logs-page-"
)

// d2Log is the raw log entry shape stored in the datastore.
type d2Log struct {
	Action   string `json:"action"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	DataSets []struct {
		ID string `json:"id"`
	} `json:"datasets"`
	User struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Username    string `json:"username"`
	} `json:"user"`
}

// D2LogRepository reads audit logs from the keyed datastore namespace. The
// store keeps a current-page pointer plus one value per page.
type D2LogRepository struct {
	client dhis2.Client
	logger *logging.Logger
}

var _ contracts.LogRepository = (*D2LogRepository)(nil)

// NewD2LogRepository creates a log repository over the datastore.
func NewD2LogRepository(client dhis2.Client) *D2LogRepository {
	return &D2LogRepository{
		client: client,
		logger: logging.Default().WithComponent("log_repository"),
	}
}

// GetByDataSets retrieves the current log page and filters it to entries
// touching any of the given DataSet ids.
func (r *D2LogRepository) GetByDataSets(ctx context.Context, dataSetIDs []string) ([]dataset.Log, error) {
	currentPage, err := r.currentPage(ctx)
	if err != nil {
		return nil, err
	}

	var d2Logs []d2Log
	err = r.client.GetDataStoreValue(ctx, logsNamespace, logsPagePrefix+strconv.Itoa(currentPage), &d2Logs)
	if errors.Is(err, dhis2.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get logs page %d: %w", currentPage, err)
	}

	wanted := make(map[string]bool, len(dataSetIDs))
	for _, id := range dataSetIDs {
		wanted[id] = true
	}

	var logs []dataset.Log
	for _, d2 := range d2Logs {
		log := r.buildLog(d2)
		if touchesAny(log, wanted) {
			logs = append(logs, log)
		}
	}
	return logs, nil
}

// currentPage reads the current-page pointer; a missing pointer is a hard
// error since the page keys cannot be addressed without it.
func (r *D2LogRepository) currentPage(ctx context.Context) (int, error) {
	var currentPage int
	err := r.client.GetDataStoreValue(ctx, logsNamespace, logsPageCurrentKey, &currentPage)
	if errors.Is(err, dhis2.ErrKeyNotFound) || (err == nil && currentPage == 0) {
		return 0, contracts.ErrLogsCurrentPage
	}
	if err != nil {
		return 0, fmt.Errorf("get logs current page: %w", err)
	}
	return currentPage, nil
}

func (r *D2LogRepository) buildLog(d2 d2Log) dataset.Log {
	action, description := dataset.ActionFromLegacyDescription(d2.Action)

	refs := make([]dataset.LogDataSetRef, 0, len(d2.DataSets))
	for _, ds := range d2.DataSets {
		refs = append(refs, dataset.LogDataSetRef{ID: ds.ID, ShortName: ""})
	}

	return dataset.Log{
		Date:              d2.Date,
		Action:            action,
		ActionDescription: description,
		Status:            dataset.LogStatus(d2.Status),
		DataSets:          refs,
		User: dataset.LogUser{
			ID:       d2.User.ID,
			Name:     d2.User.DisplayName,
			Username: d2.User.Username,
		},
	}
}

func touchesAny(log dataset.Log, wanted map[string]bool) bool {
	for _, ref := range log.DataSets {
		if wanted[ref.ID] {
			return true
		}
	}
	return false
}
