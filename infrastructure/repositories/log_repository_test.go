package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/test/mocks"
)

func TestD2LogRepository_GetByDataSets(t *testing.T) {
	client := &mocks.MockDHIS2Client{}
	repo := NewD2LogRepository(client)

	client.On("GetDataStoreValue", mock.Anything, logsNamespace, logsPageCurrentKey, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*int) = 3
		}).
		Return(nil)

	client.On("GetDataStoreValue", mock.Anything, logsNamespace, "logs-page-3", mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*[]d2Log) = []d2Log{
				{
					Action: "change sharing settings",
					Date:   "2024-05-01T10:00:00",
					Status: "success",
					DataSets: []struct {
						ID string `json:"id"`
					}{{ID: "ds1"}},
					User: struct {
						ID          string `json:"id"`
						DisplayName string `json:"displayName"`
						Username    string `json:"username"`
					}{ID: "u1", DisplayName: "Admin", Username: "admin"},
				},
				{
					Action: "delete",
					Date:   "2024-05-02T10:00:00",
					Status: "failure",
					DataSets: []struct {
						ID string `json:"id"`
					}{{ID: "other"}},
				},
			}
		}).
		Return(nil)

	logs, err := repo.GetByDataSets(context.Background(), []string{"ds1"})

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, dataset.LogActionSharing, logs[0].Action)
	assert.Equal(t, "change sharing settings", logs[0].ActionDescription)
	assert.Equal(t, dataset.LogStatusSuccess, logs[0].Status)
	assert.Equal(t, "Admin", logs[0].User.Name)
	client.AssertExpectations(t)
}

func TestD2LogRepository_MissingCurrentPage(t *testing.T) {
	client := &mocks.MockDHIS2Client{}
	repo := NewD2LogRepository(client)

	client.On("GetDataStoreValue", mock.Anything, logsNamespace, logsPageCurrentKey, mock.Anything).
		Return(dhis2.ErrKeyNotFound)

	_, err := repo.GetByDataSets(context.Background(), []string{"ds1"})

	assert.ErrorIs(t, err, contracts.ErrLogsCurrentPage)
}

func TestD2LogRepository_MissingLogsPageIsEmpty(t *testing.T) {
	client := &mocks.MockDHIS2Client{}
	repo := NewD2LogRepository(client)

	client.On("GetDataStoreValue", mock.Anything, logsNamespace, logsPageCurrentKey, mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*int) = 1
		}).
		Return(nil)
	client.On("GetDataStoreValue", mock.Anything, logsNamespace, "logs-page-1", mock.Anything).
		Return(dhis2.ErrKeyNotFound)

	logs, err := repo.GetByDataSets(context.Background(), []string{"ds1"})

	require.NoError(t, err)
	assert.Empty(t, logs)
}
