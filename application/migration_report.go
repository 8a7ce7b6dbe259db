package application

import (
	"strings"

	"dsadmin/domain/dataset"
)

// MigrationReportCSV renders the migration report consumed by program
// staff: one row per DataSet with its id, name and matched project name.
// Fields containing a comma are wrapped in double quotes with internal
// quotes doubled; all other fields are written bare.
func MigrationReportCSV(dataSets []dataset.DataSet) string {
	rows := make([]string, 0, len(dataSets)+1)
	rows = append(rows, "id,name,project")
	for _, ds := range dataSets {
		projectName := ""
		if ds.Project != nil {
			projectName = ds.Project.Name
		}
		rows = append(rows, strings.Join([]string{
			ds.ID,
			escapeCSVField(ds.Name),
			escapeCSVField(projectName),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func escapeCSVField(field string) string {
	if !strings.Contains(field, ",") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
