package dataset

// CodedRef is a remote metadata object resolved by code or name.
type CodedRef struct {
	ID   string
	Name string
	Code string
}

// MetadataItem holds the instance-specific metadata objects this service
// depends on: the attributes marking app-created DataSets and linking them
// to projects, and the category backing projects.
type MetadataItem struct {
	ProjectAttribute      CodedRef
	CreatedByAppAttribute CodedRef
	ProjectCategory       CodedRef
}
