package presenters

import (
	"dsadmin/domain/dataset"
)

// ProjectViewModel is the JSON shape of a Project with its DataSets.
type ProjectViewModel struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	LastUpdated string             `json:"lastUpdated"`
	DataSets    []DataSetViewModel `json:"dataSets"`
}

// ProjectPresenter shapes Projects for the web UI.
type ProjectPresenter struct {
	dataSets *DataSetPresenter
}

// NewProjectPresenter creates a project presenter.
func NewProjectPresenter(dataSets *DataSetPresenter) *ProjectPresenter {
	return &ProjectPresenter{dataSets: dataSets}
}

// ToViewModel maps one Project.
func (p *ProjectPresenter) ToViewModel(project dataset.Project) ProjectViewModel {
	return ProjectViewModel{
		ID:          project.ID,
		Name:        project.Name,
		LastUpdated: project.LastUpdated,
		DataSets:    p.dataSets.ToViewModels(project.DataSets),
	}
}

// ToPageViewModel maps one page of Projects.
func (p *ProjectPresenter) ToPageViewModel(page *dataset.Paginated[dataset.Project]) PageViewModel[ProjectViewModel] {
	vms := make([]ProjectViewModel, 0, len(page.Data))
	for _, project := range page.Data {
		vms = append(vms, p.ToViewModel(project))
	}
	return PageViewModel[ProjectViewModel]{
		Page:      page.Page,
		PageSize:  page.PageSize,
		PageCount: page.PageCount,
		Total:     page.Total,
		Objects:   vms,
	}
}
