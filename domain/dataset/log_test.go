package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromLegacyDescription(t *testing.T) {
	tests := []struct {
		description    string
		expectedAction LogAction
		expectedDesc   string
	}{
		{"edit dataset", LogActionEdit, "edit dataset"},
		{"create new dataset", LogActionCreate, "create new dataset"},
		{"change sharing settings", LogActionSharing, "change sharing settings"},
		{"delete", LogActionDelete, "delete"},
		{"change organisation units", LogActionOrgUnits, "change organisation units"},
		{"clone dataset", LogActionClone, "clone dataset"},
		{"something else entirely", LogActionUnknown, "unknown action"},
		{"", LogActionUnknown, "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			action, description := ActionFromLegacyDescription(tt.description)
			assert.Equal(t, tt.expectedAction, action)
			assert.Equal(t, tt.expectedDesc, description)
		})
	}
}

func TestWithDataSetDetails(t *testing.T) {
	logs := []Log{
		{
			Action: LogActionSharing,
			DataSets: []LogDataSetRef{
				{ID: "ds1"},
				{ID: "gone"},
			},
		},
	}
	dataSets := []DataSet{{ID: "ds1", Name: "Malaria Form"}}

	result := WithDataSetDetails(logs, dataSets)

	// References to deleted DataSets are dropped; the join is partial.
	assert.Equal(t, []LogDataSetRef{{ID: "ds1", ShortName: "Malaria Form"}}, result[0].DataSets)
}
