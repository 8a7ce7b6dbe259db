package repositories

import (
	"context"
	"fmt"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/dhis2"
)

// D2UserRepository exposes the authenticated user of the remote instance.
type D2UserRepository struct {
	client dhis2.Client
}

var _ contracts.UserRepository = (*D2UserRepository)(nil)

// NewD2UserRepository creates a user repository.
func NewD2UserRepository(client dhis2.Client) *D2UserRepository {
	return &D2UserRepository{client: client}
}

func (r *D2UserRepository) GetCurrent(ctx context.Context) (*dataset.User, error) {
	me, err := r.client.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return &dataset.User{ID: me.ID, Name: me.DisplayName, Username: me.Username}, nil
}
