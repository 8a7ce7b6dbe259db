package repositories

import (
	"strings"

	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/dhis2"
	"dsadmin/logging"
)

// datasetMapper builds DataSet aggregates from raw API records: it derives
// core competencies from section codes, resolves the project through the
// designated attribute, decodes the public access string and flattens the
// access lists.
type datasetMapper struct {
	projectAttributeID string
	logger             *logging.Logger
}

func newDatasetMapper(projectAttributeID string) *datasetMapper {
	return &datasetMapper{
		projectAttributeID: projectAttributeID,
		logger:             logging.Default().WithComponent("dataset_mapper"),
	}
}

// buildDataSet assembles one DataSet aggregate. Competency codes without a
// catalog match and absent project attributes resolve to nothing rather
// than failing; referential integrity against the side catalogs is soft.
func (m *datasetMapper) buildDataSet(
	d2 dhis2.D2DataSet,
	competencyCatalog []dataset.CoreCompetency,
	projectCatalog []dataset.Project,
) dataset.DataSet {
	return dataset.DataSet{
		ID:                  d2.ID,
		Name:                d2.DisplayName,
		ShortName:           d2.DisplayShortName,
		Description:         d2.DisplayDescription,
		Created:             d2.Created,
		LastUpdated:         d2.LastUpdated,
		MetadataPermissions: dataset.DecodePermission(d2.Sharing.Public, dataset.MetadataPermissionOffset),
		DataPermissions:     dataset.DecodePermission(d2.Sharing.Public, dataset.DataPermissionOffset),
		Access:              m.buildAccess(d2),
		CoreCompetencies:    m.buildCompetencies(d2, competencyCatalog),
		OrgUnits:            m.buildOrgUnits(d2),
		Project:             m.resolveProject(d2, projectCatalog),
	}
}

func (m *datasetMapper) buildAccess(d2 dhis2.D2DataSet) []dataset.AccessData {
	access := make([]dataset.AccessData, 0, len(d2.UserAccesses)+len(d2.UserGroupAccesses))
	for _, a := range d2.UserAccesses {
		access = append(access, dataset.AccessData{
			ID: a.ID, Name: a.DisplayName, Value: a.Access, Type: dataset.AccessTypeUsers,
		})
	}
	for _, a := range d2.UserGroupAccesses {
		access = append(access, dataset.AccessData{
			ID: a.ID, Name: a.DisplayName, Value: a.Access, Type: dataset.AccessTypeGroups,
		})
	}
	return access
}

// buildCompetencies maps section codes through the competency-code
// extractor, de-duplicates by code and resolves against the catalog. Codes
// with no catalog entry are dropped.
func (m *datasetMapper) buildCompetencies(
	d2 dhis2.D2DataSet,
	catalog []dataset.CoreCompetency,
) []dataset.CoreCompetency {
	byCode := make(map[string]dataset.CoreCompetency, len(catalog))
	for _, c := range catalog {
		byCode[c.Code] = c
	}

	seen := make(map[string]bool)
	var competencies []dataset.CoreCompetency
	for _, section := range d2.Sections {
		code := m.extractCompetencyCode(section.ID, section.Code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		if competency, ok := byCode[code]; ok {
			competencies = append(competencies, competency)
		}
	}
	return competencies
}

// extractCompetencyCode reads the trailing segment of a section code of the
// form PREFIX_TYPE_COMPETENCYCODE. Sections without a code are skipped with
// a diagnostic.
func (m *datasetMapper) extractCompetencyCode(sectionID, sectionCode string) string {
	if sectionCode == "" {
		m.logger.Warn("section has no code", "section_id", sectionID)
		return ""
	}
	parts := strings.Split(sectionCode, "_")
	if len(parts) <= 2 {
		return ""
	}
	return strings.Join(parts[2:], "_")
}

func (m *datasetMapper) buildOrgUnits(d2 dhis2.D2DataSet) []dataset.OrgUnit {
	orgUnits := make([]dataset.OrgUnit, 0, len(d2.OrganisationUnits))
	for _, ou := range d2.OrganisationUnits {
		paths := strings.Split(ou.Path, "/")
		if len(paths) > 0 && paths[0] == "" {
			paths = paths[1:]
		}
		orgUnits = append(orgUnits, dataset.OrgUnit{ID: ou.ID, Name: ou.DisplayName, Paths: paths})
	}
	return orgUnits
}

// resolveProject reads the project attribute value and matches it against
// the project catalog. Absence of either yields no project.
func (m *datasetMapper) resolveProject(d2 dhis2.D2DataSet, catalog []dataset.Project) *dataset.Project {
	projectID := m.projectAttributeValue(d2)
	if projectID == "" {
		return nil
	}
	for _, p := range catalog {
		if p.ID == projectID {
			project := p
			return &project
		}
	}
	return nil
}

// projectAttributeValue returns the raw value of the designated project
// attribute, or empty when the DataSet does not carry it.
func (m *datasetMapper) projectAttributeValue(d2 dhis2.D2DataSet) string {
	for _, av := range d2.AttributeValues {
		if av.Attribute.ID == m.projectAttributeID {
			return av.Value
		}
	}
	return ""
}
