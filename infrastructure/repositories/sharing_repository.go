package repositories

import (
	"context"
	"fmt"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
	"dsadmin/infrastructure/dhis2"
)

// D2SharingRepository searches users and user groups through the sharing
// search endpoint.
type D2SharingRepository struct {
	client dhis2.Client
}

var _ contracts.SharingRepository = (*D2SharingRepository)(nil)

// NewD2SharingRepository creates a sharing repository.
func NewD2SharingRepository(client dhis2.Client) *D2SharingRepository {
	return &D2SharingRepository{client: client}
}

func (r *D2SharingRepository) Search(ctx context.Context, key string) (*dataset.Sharing, error) {
	res, err := r.client.SearchSharing(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("search sharing: %w", err)
	}
	return &dataset.Sharing{
		PublicAccess:      "",
		UserAccesses:      toAccessDetails(res.Users),
		UserGroupAccesses: toAccessDetails(res.UserGroups),
	}, nil
}

func toAccessDetails(candidates []dhis2.D2SharingCandidate) []dataset.AccessDetails {
	details := make([]dataset.AccessDetails, 0, len(candidates))
	for _, c := range candidates {
		details = append(details, dataset.AccessDetails{ID: c.ID, Name: c.DisplayName})
	}
	return details
}
