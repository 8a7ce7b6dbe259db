package contracts

import (
	"context"

	"dsadmin/domain/dataset"
)

// UserRepository exposes the authenticated user of the remote instance.
type UserRepository interface {
	GetCurrent(ctx context.Context) (*dataset.User, error)
}
