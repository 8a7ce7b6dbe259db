package presenters

import (
	"dsadmin/domain/dataset"
)

// LogViewModel is the JSON shape of one audit log entry.
type LogViewModel struct {
	Date              string                `json:"date"`
	Action            string                `json:"action"`
	ActionDescription string                `json:"actionDescription"`
	User              LogUserViewModel      `json:"user"`
	Status            string                `json:"status"`
	DataSets          []LogDataSetViewModel `json:"dataSets"`
}

// LogUserViewModel identifies who performed a logged action.
type LogUserViewModel struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LogDataSetViewModel references a DataSet affected by a logged action.
type LogDataSetViewModel struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"`
}

// LogPresenter shapes audit logs for the web UI.
type LogPresenter struct{}

// NewLogPresenter creates a log presenter.
func NewLogPresenter() *LogPresenter {
	return &LogPresenter{}
}

// ToViewModels maps a list of log entries.
func (p *LogPresenter) ToViewModels(logs []dataset.Log) []LogViewModel {
	vms := make([]LogViewModel, 0, len(logs))
	for _, log := range logs {
		refs := make([]LogDataSetViewModel, 0, len(log.DataSets))
		for _, ref := range log.DataSets {
			refs = append(refs, LogDataSetViewModel{ID: ref.ID, ShortName: ref.ShortName})
		}
		vms = append(vms, LogViewModel{
			Date:              log.Date,
			Action:            string(log.Action),
			ActionDescription: log.ActionDescription,
			User: LogUserViewModel{
				ID:       log.User.ID,
				Username: log.User.Username,
				Name:     log.User.Name,
			},
			Status:   string(log.Status),
			DataSets: refs,
		})
	}
	return vms
}
