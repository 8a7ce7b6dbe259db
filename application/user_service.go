package application

import (
	"context"

	"dsadmin/domain/contracts"
	"dsadmin/domain/dataset"
)

// UserService exposes the authenticated remote-instance user.
type UserService struct {
	users contracts.UserRepository
}

// NewUserService creates a user service.
func NewUserService(users contracts.UserRepository) *UserService {
	return &UserService{users: users}
}

// Current returns the authenticated user.
func (s *UserService) Current(ctx context.Context) (*dataset.User, error) {
	return s.users.GetCurrent(ctx)
}
