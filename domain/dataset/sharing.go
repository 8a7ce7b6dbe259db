package dataset

// AccessDetails identifies a user or user group found through the sharing
// search, or supplied as part of a sharing update. Value carries the
// octal-notation access string to grant; it may be empty in search results.
type AccessDetails struct {
	ID    string
	Name  string
	Value string
}

// Sharing is the result of a sharing search against the remote instance.
type Sharing struct {
	PublicAccess      string
	UserAccesses      []AccessDetails
	UserGroupAccesses []AccessDetails
}

// ShareUpdate is a partial sharing update. Each axis is independently
// optional: a nil PublicAccess leaves both permission dimensions untouched,
// and a nil access list leaves the corresponding access entries untouched.
// Supplied lists replace their axis entirely.
type ShareUpdate struct {
	PublicAccess      *string
	UserAccesses      []AccessDetails
	UserGroupAccesses []AccessDetails
}

// ApplySharing returns copies of dataSets with the update applied. Axes not
// present in the update are preserved unchanged on every DataSet.
func ApplySharing(dataSets []DataSet, update ShareUpdate) []DataSet {
	out := make([]DataSet, 0, len(dataSets))
	for _, ds := range dataSets {
		users := ds.AccessByType(AccessTypeUsers)
		if update.UserAccesses != nil {
			users = toAccessData(update.UserAccesses, AccessTypeUsers)
		}
		groups := ds.AccessByType(AccessTypeGroups)
		if update.UserGroupAccesses != nil {
			groups = toAccessData(update.UserGroupAccesses, AccessTypeGroups)
		}
		ds.Access = append(users, groups...)

		if update.PublicAccess != nil {
			ds.MetadataPermissions = decodePublicAccess(*update.PublicAccess, MetadataPermissionOffset)
			ds.DataPermissions = decodePublicAccess(*update.PublicAccess, DataPermissionOffset)
		}
		out = append(out, ds)
	}
	return out
}

func toAccessData(details []AccessDetails, t AccessType) []AccessData {
	access := make([]AccessData, 0, len(details))
	for _, d := range details {
		access = append(access, AccessData{ID: d.ID, Name: d.Name, Value: d.Value, Type: t})
	}
	return access
}

func decodePublicAccess(value string, offset int) Permission {
	if value == NoAccessNotation {
		return Permission{NoAccess: true}
	}
	return DecodePermission(value, offset)
}
