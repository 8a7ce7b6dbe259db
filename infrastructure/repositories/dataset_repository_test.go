package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/config"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/test/mocks"
)

func testMetadata() *dataset.MetadataItem {
	return &dataset.MetadataItem{
		ProjectAttribute:      dataset.CodedRef{ID: "attrProj", Code: "GL_DATASET_PROJECT"},
		CreatedByAppAttribute: dataset.CodedRef{ID: "attrApp", Code: "GL_CREATED_BY_DATASET_CONFIGURATION"},
		ProjectCategory:       dataset.CodedRef{ID: "catProj", Code: "GL_Project"},
	}
}

func TestD2DataSetRepository_Save_PreservesUnmodelledOwnerFields(t *testing.T) {
	client := &mocks.MockDHIS2Client{}
	repo := NewD2DataSetRepository(client, testMetadata(), config.DefaultChunkConfig())

	owner := map[string]json.RawMessage{
		"id":         json.RawMessage(`"ds1"`),
		"periodType": json.RawMessage(`"Monthly"`),
		"sharing":    json.RawMessage(`{"public":"rwrw----"}`),
		"attributeValues": json.RawMessage(
			`[{"attribute":{"id":"attrApp"},"value":"true"}]`),
	}
	client.On("GetDataSetsOwner", mock.Anything, mock.Anything).
		Return(&dhis2.DataSetsOwnerResponse{DataSets: []map[string]json.RawMessage{owner}}, nil)

	var posted dhis2.MetadataPayload
	client.On("PostMetadata", mock.Anything, mock.Anything, dhis2.ImportStrategyCreateAndUpdate).
		Run(func(args mock.Arguments) {
			posted = args.Get(1).(dhis2.MetadataPayload)
		}).
		Return(&dhis2.MetadataResponse{Status: "OK"}, nil)

	err := repo.Save(context.Background(), []dataset.DataSet{{
		ID:                  "ds1",
		Name:                "TB Outcomes",
		ShortName:           "TB",
		Description:         "Quarterly TB outcomes",
		MetadataPermissions: dataset.Permission{CanRead: true, CanWrite: true},
		DataPermissions:     dataset.Permission{CanRead: true},
		Project:             &dataset.Project{ID: "p1", Name: "Northern Relief"},
	}})
	require.NoError(t, err)

	require.Len(t, posted.DataSets, 1)
	raw, err := json.Marshal(posted.DataSets[0])
	require.NoError(t, err)

	var merged map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &merged))

	// Edited fields win.
	assert.JSONEq(t, `"TB Outcomes"`, string(merged["name"]))
	assert.JSONEq(t, `"rwr-----"`, string(merged["publicAccess"]))
	// Owner fields this service does not model survive the round trip.
	assert.JSONEq(t, `"Monthly"`, string(merged["periodType"]))
	// The sharing block is dropped in favor of the flat access fields.
	assert.NotContains(t, merged, "sharing")

	// The project attribute is upserted next to the untouched app attribute.
	var attributeValues []dhis2.D2AttributeValue
	require.NoError(t, json.Unmarshal(merged["attributeValues"], &attributeValues))
	require.Len(t, attributeValues, 2)
	assert.Equal(t, "attrApp", attributeValues[0].Attribute.ID)
	assert.Equal(t, "true", attributeValues[0].Value)
	assert.Equal(t, "attrProj", attributeValues[1].Attribute.ID)
	assert.Equal(t, "p1", attributeValues[1].Value)
}

func TestD2DataSetRepository_Save_MissingTargetAborts(t *testing.T) {
	client := &mocks.MockDHIS2Client{}
	repo := NewD2DataSetRepository(client, testMetadata(), config.DefaultChunkConfig())

	client.On("GetDataSetsOwner", mock.Anything, mock.Anything).
		Return(&dhis2.DataSetsOwnerResponse{}, nil)

	err := repo.Save(context.Background(), []dataset.DataSet{{ID: "ghost"}})

	// The save fails before the metadata post when the remote record is gone.
	assert.ErrorIs(t, err, contracts.ErrDataSetNotFound)
	client.AssertNotCalled(t, "PostMetadata", mock.Anything, mock.Anything, mock.Anything)
}

func TestD2DataSetRepository_Remove_PostsDeleteStrategy(t *testing.T) {
	client := &mocks.MockDHIS2Client{}
	repo := NewD2DataSetRepository(client, testMetadata(), config.DefaultChunkConfig())

	client.On("PostMetadata", mock.Anything, dhis2.MetadataDeletePayload{
		DataSets: []dhis2.D2Ref{{ID: "ds1"}, {ID: "ds2"}},
	}, dhis2.ImportStrategyDelete).
		Return(&dhis2.MetadataResponse{Status: "OK"}, nil)

	err := repo.Remove(context.Background(), []string{"ds1", "ds2"})

	require.NoError(t, err)
	client.AssertExpectations(t)
}
