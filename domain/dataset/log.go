package dataset

// LogAction classifies the operation an audit log entry records.
type LogAction string

const (
	LogActionSharing  LogAction = "sharing"
	LogActionOrgUnits LogAction = "orgunits"
	LogActionDelete   LogAction = "delete"
	LogActionEdit     LogAction = "edit"
	LogActionCreate   LogAction = "create"
	LogActionClone    LogAction = "clone"
	LogActionUnknown  LogAction = "unknown"
)

// LogStatus is the recorded outcome of the logged action.
type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusFailure LogStatus = "failure"
)

// LogUser identifies who performed a logged action.
type LogUser struct {
	ID       string
	Username string
	Name     string
}

// LogDataSetRef references a DataSet affected by a logged action. ShortName
// is filled in client-side by joining against freshly fetched DataSets.
type LogDataSetRef struct {
	ID        string
	ShortName string
}

// Log is an immutable audit record of an action taken on one or more
// DataSets. Entries are written by the remote system and read-only here.
type Log struct {
	Date              string
	Action            LogAction
	ActionDescription string
	User              LogUser
	Status            LogStatus
	DataSets          []LogDataSetRef
}

// legacyActions maps the free-form action descriptions stored by the legacy
// application onto the action enum.
var legacyActions = map[string]LogAction{
	"edit dataset":              LogActionEdit,
	"create new dataset":        LogActionCreate,
	"change sharing settings":   LogActionSharing,
	"delete":                    LogActionDelete,
	"change organisation units": LogActionOrgUnits,
	"clone dataset":             LogActionClone,
}

// ActionFromLegacyDescription resolves a stored action description to the
// action enum. Unrecognized descriptions map to LogActionUnknown with an
// "unknown action" description.
func ActionFromLegacyDescription(description string) (LogAction, string) {
	action, ok := legacyActions[description]
	if !ok {
		return LogActionUnknown, "unknown action"
	}
	return action, description
}

// WithDataSetDetails joins each log's DataSet references against the given
// DataSets, filling in short names. References to DataSets that no longer
// exist are dropped, so the join may legitimately be partial.
func WithDataSetDetails(logs []Log, dataSets []DataSet) []Log {
	byID := make(map[string]DataSet, len(dataSets))
	for _, ds := range dataSets {
		byID[ds.ID] = ds
	}

	out := make([]Log, 0, len(logs))
	for _, log := range logs {
		refs := make([]LogDataSetRef, 0, len(log.DataSets))
		for _, ref := range log.DataSets {
			ds, ok := byID[ref.ID]
			if !ok {
				continue
			}
			refs = append(refs, LogDataSetRef{ID: ref.ID, ShortName: ds.Name})
		}
		log.DataSets = refs
		out = append(out, log)
	}
	return out
}
