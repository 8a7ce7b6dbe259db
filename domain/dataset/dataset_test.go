package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataSet_AccessDescription(t *testing.T) {
	tests := []struct {
		name     string
		dataSet  DataSet
		expected string
	}{
		{
			name: "public view and edit",
			dataSet: DataSet{
				DataPermissions:     Permission{CanRead: true, CanWrite: true},
				MetadataPermissions: Permission{CanRead: true},
			},
			expected: "Data: Public view/edit, Metadata: Public view",
		},
		{
			name: "no public access",
			dataSet: DataSet{
				DataPermissions:     Permission{NoAccess: true},
				MetadataPermissions: Permission{NoAccess: true},
			},
			expected: "Data: No public access, Metadata: No public access",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dataSet.AccessDescription())
		})
	}
}

func TestDataSet_FullAccessString(t *testing.T) {
	ds := DataSet{
		MetadataPermissions: Permission{CanRead: true, CanWrite: true},
		DataPermissions:     Permission{NoAccess: true},
	}
	assert.Equal(t, "rw------", ds.FullAccessString())
}

func TestJoinShortNames(t *testing.T) {
	dataSets := []DataSet{{ShortName: "TB"}, {ShortName: "Malaria"}}
	assert.Equal(t, "TB, Malaria", JoinShortNames(dataSets))
}
