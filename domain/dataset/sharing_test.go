package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySharing_ReplacesOnlySuppliedAxes(t *testing.T) {
	dataSets := []DataSet{
		{
			ID: "ds1",
			Access: []AccessData{
				{ID: "u1", Name: "User 1", Value: "rw------", Type: AccessTypeUsers},
				{ID: "g0", Name: "Group 0", Value: "r-------", Type: AccessTypeGroups},
			},
			DataPermissions:     Permission{CanRead: true},
			MetadataPermissions: Permission{CanRead: true, CanWrite: true},
		},
	}

	result := ApplySharing(dataSets, ShareUpdate{
		UserGroupAccesses: []AccessDetails{{ID: "g1", Name: "Group 1", Value: "rw------"}},
	})

	// Users axis untouched, groups axis replaced.
	assert.Equal(t, []AccessData{
		{ID: "u1", Name: "User 1", Value: "rw------", Type: AccessTypeUsers},
	}, result[0].AccessByType(AccessTypeUsers))
	assert.Equal(t, []AccessData{
		{ID: "g1", Name: "Group 1", Value: "rw------", Type: AccessTypeGroups},
	}, result[0].AccessByType(AccessTypeGroups))

	// Public access untouched since it was not supplied.
	assert.Equal(t, Permission{CanRead: true}, result[0].DataPermissions)
	assert.Equal(t, Permission{CanRead: true, CanWrite: true}, result[0].MetadataPermissions)
}

func TestApplySharing_PublicAccess(t *testing.T) {
	dataSets := []DataSet{{ID: "ds1"}}

	publicAccess := "rwr-----"
	result := ApplySharing(dataSets, ShareUpdate{PublicAccess: &publicAccess})

	assert.Equal(t, Permission{CanRead: true, CanWrite: true}, result[0].MetadataPermissions)
	assert.Equal(t, Permission{CanRead: true}, result[0].DataPermissions)
}

func TestApplySharing_NoAccessSentinel(t *testing.T) {
	dataSets := []DataSet{{
		ID:                  "ds1",
		DataPermissions:     Permission{CanRead: true, CanWrite: true},
		MetadataPermissions: Permission{CanRead: true, CanWrite: true},
	}}

	sentinel := NoAccessNotation
	result := ApplySharing(dataSets, ShareUpdate{PublicAccess: &sentinel})

	assert.Equal(t, Permission{NoAccess: true}, result[0].DataPermissions)
	assert.Equal(t, Permission{NoAccess: true}, result[0].MetadataPermissions)
}

func TestApplySharing_EmptySuppliedListClearsAxis(t *testing.T) {
	dataSets := []DataSet{{
		ID: "ds1",
		Access: []AccessData{
			{ID: "u1", Type: AccessTypeUsers},
			{ID: "g1", Type: AccessTypeGroups},
		},
	}}

	result := ApplySharing(dataSets, ShareUpdate{UserAccesses: []AccessDetails{}})

	assert.Empty(t, result[0].AccessByType(AccessTypeUsers))
	assert.Equal(t, []AccessData{{ID: "g1", Type: AccessTypeGroups}}, result[0].AccessByType(AccessTypeGroups))
}
