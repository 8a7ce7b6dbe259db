package contracts

import (
	"context"

	"dsadmin/domain/dataset"
)

// MetadataRepository resolves the instance metadata this service depends on.
type MetadataRepository interface {
	// Get resolves the configured attributes and categories by code or name.
	// A missing object is a hard error.
	Get(ctx context.Context) (*dataset.MetadataItem, error)
}
