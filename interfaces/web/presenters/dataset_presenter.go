package presenters

import (
	"dsadmin/domain/dataset"
)

// DataSetViewModel is the JSON shape of a DataSet for the web UI.
type DataSetViewModel struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	ShortName         string                `json:"shortName"`
	Description       string                `json:"description"`
	Created           string                `json:"created"`
	LastUpdated       string                `json:"lastUpdated"`
	PublicAccess      string                `json:"publicAccess"`
	AccessDescription string                `json:"accessDescription"`
	Access            []AccessViewModel     `json:"access"`
	CoreCompetencies  []CompetencyViewModel `json:"coreCompetencies"`
	OrgUnits          []OrgUnitViewModel    `json:"orgUnits"`
	Project           *ProjectRefViewModel  `json:"project,omitempty"`
}

// AccessViewModel is one explicit access entry.
type AccessViewModel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// CompetencyViewModel is one core competency tag.
type CompetencyViewModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// OrgUnitViewModel is one assigned organisation unit.
type OrgUnitViewModel struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Paths []string `json:"paths"`
}

// ProjectRefViewModel references the DataSet's project.
type ProjectRefViewModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PageViewModel wraps a page of items with pager state.
type PageViewModel[T any] struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
	Objects   []T `json:"objects"`
}

// DataSetPresenter shapes DataSets for the web UI.
type DataSetPresenter struct{}

// NewDataSetPresenter creates a DataSet presenter.
func NewDataSetPresenter() *DataSetPresenter {
	return &DataSetPresenter{}
}

// ToViewModel maps one DataSet.
func (p *DataSetPresenter) ToViewModel(ds dataset.DataSet) DataSetViewModel {
	vm := DataSetViewModel{
		ID:                ds.ID,
		Name:              ds.Name,
		ShortName:         ds.ShortName,
		Description:       ds.Description,
		Created:           ds.Created,
		LastUpdated:       ds.LastUpdated,
		PublicAccess:      ds.FullAccessString(),
		AccessDescription: ds.AccessDescription(),
		Access:            p.toAccessViewModels(ds.Access),
		CoreCompetencies:  p.toCompetencyViewModels(ds.CoreCompetencies),
		OrgUnits:          p.toOrgUnitViewModels(ds.OrgUnits),
	}
	if ds.Project != nil {
		vm.Project = &ProjectRefViewModel{ID: ds.Project.ID, Name: ds.Project.Name}
	}
	return vm
}

// ToViewModels maps a list of DataSets.
func (p *DataSetPresenter) ToViewModels(dataSets []dataset.DataSet) []DataSetViewModel {
	vms := make([]DataSetViewModel, 0, len(dataSets))
	for _, ds := range dataSets {
		vms = append(vms, p.ToViewModel(ds))
	}
	return vms
}

// ToPageViewModel maps one page of DataSets.
func (p *DataSetPresenter) ToPageViewModel(page *dataset.Paginated[dataset.DataSet]) PageViewModel[DataSetViewModel] {
	return PageViewModel[DataSetViewModel]{
		Page:      page.Page,
		PageSize:  page.PageSize,
		PageCount: page.PageCount,
		Total:     page.Total,
		Objects:   p.ToViewModels(page.Data),
	}
}

func (p *DataSetPresenter) toAccessViewModels(access []dataset.AccessData) []AccessViewModel {
	vms := make([]AccessViewModel, 0, len(access))
	for _, a := range access {
		vms = append(vms, AccessViewModel{ID: a.ID, Name: a.Name, Value: a.Value, Type: string(a.Type)})
	}
	return vms
}

func (p *DataSetPresenter) toCompetencyViewModels(competencies []dataset.CoreCompetency) []CompetencyViewModel {
	vms := make([]CompetencyViewModel, 0, len(competencies))
	for _, c := range competencies {
		vms = append(vms, CompetencyViewModel{ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return vms
}

func (p *DataSetPresenter) toOrgUnitViewModels(orgUnits []dataset.OrgUnit) []OrgUnitViewModel {
	vms := make([]OrgUnitViewModel, 0, len(orgUnits))
	for _, ou := range orgUnits {
		vms = append(vms, OrgUnitViewModel{ID: ou.ID, Name: ou.Name, Paths: ou.Paths})
	}
	return vms
}
