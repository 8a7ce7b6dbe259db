package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dsadmin/domain/dataset"
	"dsadmin/test/mocks"
)

func TestDataSetService_SaveOrgUnits_SingleTargetForcesReplace(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	service := NewDataSetService(repo)

	existing := []dataset.DataSet{
		{ID: "ds1", OrgUnits: []dataset.OrgUnit{{ID: "ouB", Name: "B"}}},
	}
	repo.On("GetByIDs", mock.Anything, []string{"ds1"}).Return(existing, nil)

	var saved []dataset.DataSet
	repo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]dataset.DataSet)
		}).
		Return(nil)

	err := service.SaveOrgUnits(context.Background(), SaveOrgUnitsOptions{
		DataSetIDs: []string{"ds1"},
		OrgUnitIDs: []string{"ou1"},
		Mode:       dataset.OrgUnitModeMerge,
	})

	require.NoError(t, err)
	// Merge on a single target behaves as replace: the existing org unit is
	// gone.
	require.Len(t, saved, 1)
	assert.Equal(t, []dataset.OrgUnit{{ID: "ou1", Name: "", Paths: []string{}}}, saved[0].OrgUnits)
	repo.AssertExpectations(t)
}

func TestDataSetService_SaveOrgUnits_MergeKeepsExisting(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	service := NewDataSetService(repo)

	existing := []dataset.DataSet{
		{ID: "ds1", OrgUnits: []dataset.OrgUnit{{ID: "ouB"}}},
		{ID: "ds2"},
	}
	repo.On("GetByIDs", mock.Anything, []string{"ds1", "ds2"}).Return(existing, nil)

	var saved []dataset.DataSet
	repo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]dataset.DataSet)
		}).
		Return(nil)

	err := service.SaveOrgUnits(context.Background(), SaveOrgUnitsOptions{
		DataSetIDs: []string{"ds1", "ds2"},
		OrgUnitIDs: []string{"ouA"},
		Mode:       dataset.OrgUnitModeMerge,
	})

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "ouB", saved[0].OrgUnits[0].ID)
	assert.Equal(t, "ouA", saved[0].OrgUnits[1].ID)
}

func TestDataSetService_SaveOrgUnits_FetchErrorAbortsSave(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	service := NewDataSetService(repo)

	boom := errors.New("boom")
	repo.On("GetByIDs", mock.Anything, mock.Anything).Return(nil, boom)

	err := service.SaveOrgUnits(context.Background(), SaveOrgUnitsOptions{
		DataSetIDs: []string{"ds1"},
		OrgUnitIDs: []string{"ou1"},
		Mode:       dataset.OrgUnitModeReplace,
	})

	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDataSetService_SaveSharing(t *testing.T) {
	repo := &mocks.MockDataSetRepository{}
	service := NewDataSetService(repo)

	existing := []dataset.DataSet{
		{
			ID: "ds1",
			Access: []dataset.AccessData{
				{ID: "u1", Type: dataset.AccessTypeUsers},
			},
			DataPermissions: dataset.Permission{CanRead: true},
		},
	}
	repo.On("GetByIDs", mock.Anything, []string{"ds1"}).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	updated, err := service.SaveSharing(context.Background(), []string{"ds1"}, dataset.ShareUpdate{
		UserGroupAccesses: []dataset.AccessDetails{{ID: "g1", Name: "Group 1", Value: "rw------"}},
	})

	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, []dataset.AccessData{{ID: "u1", Type: dataset.AccessTypeUsers}}, updated[0].AccessByType(dataset.AccessTypeUsers))
	assert.Len(t, updated[0].AccessByType(dataset.AccessTypeGroups), 1)
	assert.Equal(t, dataset.Permission{CanRead: true}, updated[0].DataPermissions)
}
