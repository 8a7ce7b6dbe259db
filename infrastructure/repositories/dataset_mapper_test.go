package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/dhis2"
)

func TestDatasetMapper_BuildDataSet(t *testing.T) {
	mapper := newDatasetMapper("attr-project")

	d2 := dhis2.D2DataSet{
		ID:                 "ds1",
		DisplayName:        "TB Outcomes",
		DisplayShortName:   "TB",
		DisplayDescription: "Tuberculosis outcomes form",
		Created:            "2023-01-01T00:00:00.000",
		LastUpdated:        "2024-06-01T00:00:00.000",
		Sharing:            dhis2.D2Sharing{Public: "rwr-----"},
		Sections: []dhis2.D2Section{
			{ID: "sec1", Code: "GL_OUT_EDU"},
			{ID: "sec2", Code: "GL_OUT_EDU"},
			{ID: "sec3", Code: ""},
			{ID: "sec4", Code: "GL_OUT_NOMATCH"},
		},
		UserAccesses:      []dhis2.D2Access{{ID: "u1", DisplayName: "User 1", Access: "rw------"}},
		UserGroupAccesses: []dhis2.D2Access{{ID: "g1", DisplayName: "Group 1", Access: "r-------"}},
		AttributeValues: []dhis2.D2AttributeValue{
			{Attribute: dhis2.D2Ref{ID: "attr-project"}, Value: "p1"},
			{Attribute: dhis2.D2Ref{ID: "attr-other"}, Value: "whatever"},
		},
		OrganisationUnits: []dhis2.D2OrgUnit{
			{ID: "ou1", DisplayName: "Clinic A", Path: "/root/region/ou1"},
		},
	}

	catalog := []dataset.CoreCompetency{{ID: "cc1", Name: "Education", Code: "EDU"}}
	projects := []dataset.Project{{ID: "p1", Name: "Emergency Response"}}

	ds := mapper.buildDataSet(d2, catalog, projects)

	// Duplicate section codes yield a single competency; the empty and
	// unmatched codes are dropped.
	assert.Equal(t, []dataset.CoreCompetency{{ID: "cc1", Name: "Education", Code: "EDU"}}, ds.CoreCompetencies)

	assert.Equal(t, dataset.Permission{CanRead: true, CanWrite: true}, ds.MetadataPermissions)
	assert.Equal(t, dataset.Permission{CanRead: true}, ds.DataPermissions)

	assert.Equal(t, []dataset.AccessData{
		{ID: "u1", Name: "User 1", Value: "rw------", Type: dataset.AccessTypeUsers},
		{ID: "g1", Name: "Group 1", Value: "r-------", Type: dataset.AccessTypeGroups},
	}, ds.Access)

	assert.Equal(t, []dataset.OrgUnit{
		{ID: "ou1", Name: "Clinic A", Paths: []string{"root", "region", "ou1"}},
	}, ds.OrgUnits)

	assert.NotNil(t, ds.Project)
	assert.Equal(t, "p1", ds.Project.ID)
}

func TestDatasetMapper_NoProjectAttribute(t *testing.T) {
	mapper := newDatasetMapper("attr-project")

	ds := mapper.buildDataSet(dhis2.D2DataSet{ID: "ds1"}, nil, []dataset.Project{{ID: "p1", Name: "P"}})
	assert.Nil(t, ds.Project)

	// An attribute value pointing at an unknown project also resolves to
	// nothing.
	ds = mapper.buildDataSet(dhis2.D2DataSet{
		ID:              "ds2",
		AttributeValues: []dhis2.D2AttributeValue{{Attribute: dhis2.D2Ref{ID: "attr-project"}, Value: "missing"}},
	}, nil, []dataset.Project{{ID: "p1", Name: "P"}})
	assert.Nil(t, ds.Project)
}

func TestDatasetMapper_ExtractCompetencyCode(t *testing.T) {
	mapper := newDatasetMapper("attr-project")

	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"standard code", "GL_OUT_EDU", "EDU"},
		{"multi segment competency", "GL_OUT_FOOD_SEC", "FOOD_SEC"},
		{"empty code", "", ""},
		{"too few segments", "GL_OUT", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper.extractCompetencyCode("sec1", tt.code))
		})
	}
}
