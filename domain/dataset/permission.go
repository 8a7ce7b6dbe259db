package dataset

// NoAccessNotation is the reserved DHIS2 access string meaning no access at
// all, for metadata and data alike.
const NoAccessNotation = "--------"

// Offsets of the two permission fields inside a DHIS2 access string.
const (
	MetadataPermissionOffset = 0
	DataPermissionOffset     = 2
)

// Permission is one access dimension (metadata or data) of a DataSet.
type Permission struct {
	CanRead  bool
	CanWrite bool
	NoAccess bool
}

// Encode renders the permission as its two-character octal-notation form:
// "--" for no access, otherwise "r"/"-" followed by "w"/"-".
func (p Permission) Encode() string {
	if p.NoAccess {
		return "--"
	}
	var b [2]byte
	b[0], b[1] = '-', '-'
	if p.CanRead {
		b[0] = 'r'
	}
	if p.CanWrite {
		b[1] = 'w'
	}
	return string(b[:])
}

// DecodePermission reads the two-character permission field starting at
// offset within a DHIS2 access string. Offset 0 addresses the metadata
// field, offset 2 the data field.
func DecodePermission(access string, offset int) Permission {
	var canRead, canWrite bool
	if len(access) > offset {
		canRead = access[offset] == 'r'
	}
	if len(access) > offset+1 {
		canWrite = access[offset+1] == 'w'
	}
	return Permission{
		CanRead:  canRead,
		CanWrite: canWrite,
		NoAccess: !canRead && !canWrite,
	}
}

// FullAccessString composes the 8-character DHIS2 public access string from
// a metadata and a data permission: metadata field first, then the data
// field, then four filler dashes.
func FullAccessString(metadata, data Permission) string {
	return metadata.Encode() + data.Encode() + "----"
}
