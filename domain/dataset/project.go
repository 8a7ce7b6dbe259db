package dataset

import "errors"

// Validation errors for Project construction.
var (
	ErrProjectIDRequired   = errors.New("project id is required")
	ErrProjectNameRequired = errors.New("project name is required")
)

// Project is a funding/grouping entity, backed by a DHIS2 category option
// and linked to DataSets through an attribute value.
type Project struct {
	ID          string
	Name        string
	LastUpdated string
	DataSets    []DataSet
}

// NewProject validates and builds a Project. Both id and name are mandatory.
func NewProject(id, name, lastUpdated string) (Project, error) {
	if id == "" {
		return Project{}, ErrProjectIDRequired
	}
	if name == "" {
		return Project{}, ErrProjectNameRequired
	}
	return Project{ID: id, Name: name, LastUpdated: lastUpdated}, nil
}

// WithDataSets returns a copy of the project carrying the given DataSets.
func (p Project) WithDataSets(dataSets []DataSet) Project {
	p.DataSets = dataSets
	return p
}
