package contracts

import "errors"

// Common errors surfaced by repository implementations.
var (
	// ErrDataSetNotFound occurs when a save targets an id the remote
	// collection does not contain.
	ErrDataSetNotFound = errors.New("dataSet not found")

	// ErrMetadataNotFound occurs when a required attribute or category is
	// missing from the remote instance.
	ErrMetadataNotFound = errors.New("metadata object not found")

	// ErrLogsCurrentPage occurs when the datastore has no current log page
	// pointer.
	ErrLogsCurrentPage = errors.New("logs current page not found")
)
