package dataset

// OrgUnitMode selects how a bulk org-unit edit combines with the existing
// assignments of each DataSet.
type OrgUnitMode string

const (
	// OrgUnitModeReplace discards each DataSet's current org units.
	OrgUnitModeReplace OrgUnitMode = "replace"
	// OrgUnitModeMerge unions the new org units into the existing set.
	OrgUnitModeMerge OrgUnitMode = "merge"
)

// ApplyOrgUnits returns copies of dataSets with their org units replaced by,
// or merged with, the given org-unit ids. New entries carry only the id;
// names and paths are rehydrated by a later fetch.
func ApplyOrgUnits(dataSets []DataSet, orgUnitIDs []string, mode OrgUnitMode) []DataSet {
	out := make([]DataSet, 0, len(dataSets))
	for _, ds := range dataSets {
		if mode == OrgUnitModeMerge {
			ds.OrgUnits = mergeOrgUnits(ds.OrgUnits, orgUnitIDs)
		} else {
			ds.OrgUnits = bareOrgUnits(orgUnitIDs)
		}
		out = append(out, ds)
	}
	return out
}

// mergeOrgUnits unions existing org units with new ids, de-duplicating by id
// and keeping first-seen order: existing entries first, then new ids not
// already present.
func mergeOrgUnits(existing []OrgUnit, orgUnitIDs []string) []OrgUnit {
	seen := make(map[string]bool, len(existing)+len(orgUnitIDs))
	merged := make([]OrgUnit, 0, len(existing)+len(orgUnitIDs))
	for _, ou := range append(append([]OrgUnit{}, existing...), bareOrgUnits(orgUnitIDs)...) {
		if seen[ou.ID] {
			continue
		}
		seen[ou.ID] = true
		merged = append(merged, ou)
	}
	return merged
}

func bareOrgUnits(orgUnitIDs []string) []OrgUnit {
	orgUnits := make([]OrgUnit, 0, len(orgUnitIDs))
	for _, id := range orgUnitIDs {
		orgUnits = append(orgUnits, OrgUnit{ID: id, Name: "", Paths: []string{}})
	}
	return orgUnits
}
