package dataset

import "strings"

// AccessType tags an access entry with the kind of principal it grants
// access to.
type AccessType string

const (
	AccessTypeUsers  AccessType = "users"
	AccessTypeGroups AccessType = "groups"
)

// AccessData is one explicit user or user-group access granted on a DataSet.
// Value holds the octal-notation access string as stored by DHIS2.
type AccessData struct {
	ID    string
	Name  string
	Value string
	Type  AccessType
}

// OrgUnit is an organisation unit assigned to a DataSet. Paths holds the
// ancestor ids from the root down, excluding the leading empty segment of
// the DHIS2 path representation.
type OrgUnit struct {
	ID    string
	Name  string
	Paths []string
}

// CoreCompetency is a thematic classification derived from a DataSet's
// section codes.
type CoreCompetency struct {
	ID   string
	Name string
	Code string
}

// DataSet is the aggregate root managed by this service: a DHIS2 data
// collection form enriched with its project, competencies, org units and
// sharing state. Instances are treated as immutable; updates produce copies.
type DataSet struct {
	ID                  string
	Name                string
	ShortName           string
	Description         string
	Created             string
	LastUpdated         string
	DataPermissions     Permission
	MetadataPermissions Permission
	Access              []AccessData
	CoreCompetencies    []CoreCompetency
	OrgUnits            []OrgUnit
	Project             *Project
}

// FullAccessString derives the DataSet's 8-character public access string
// from its two permission dimensions.
func (d *DataSet) FullAccessString() string {
	return FullAccessString(d.MetadataPermissions, d.DataPermissions)
}

// AccessByType returns the access entries of the given type, preserving
// order.
func (d *DataSet) AccessByType(t AccessType) []AccessData {
	var out []AccessData
	for _, a := range d.Access {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// AccessDescription renders the DataSet's public access as a human-readable
// summary, data dimension first.
func (d *DataSet) AccessDescription() string {
	return "Data: " + describePermission(d.DataPermissions) +
		", Metadata: " + describePermission(d.MetadataPermissions)
}

func describePermission(p Permission) string {
	switch {
	case p.NoAccess:
		return "No public access"
	case p.CanRead && p.CanWrite:
		return "Public view/edit"
	case p.CanRead:
		return "Public view"
	default:
		return ""
	}
}

// JoinShortNames concatenates the short names of the given DataSets,
// separated by ", ".
func JoinShortNames(dataSets []DataSet) string {
	names := make([]string, 0, len(dataSets))
	for _, ds := range dataSets {
		names = append(names, ds.ShortName)
	}
	return strings.Join(names, ", ")
}
