package contracts

import (
	"context"

	"dsadmin/domain/dataset"
)

// SharingRepository searches users and user groups for sharing dialogs.
type SharingRepository interface {
	Search(ctx context.Context, key string) (*dataset.Sharing, error)
}
