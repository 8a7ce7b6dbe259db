package application

import (
	"context"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
)

// SharingService searches users and groups for sharing dialogs.
type SharingService struct {
	sharing contracts.SharingRepository
}

// NewSharingService creates a sharing service.
func NewSharingService(sharing contracts.SharingRepository) *SharingService {
	return &SharingService{sharing: sharing}
}

// Search finds users and user groups matching the given key.
func (s *SharingService) Search(ctx context.Context, key string) (*dataset.Sharing, error) {
	return s.sharing.Search(ctx, key)
}
