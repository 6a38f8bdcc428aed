package service

import (
	"context"
	"errors"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, caller domain.Principal) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, caller.ID)
	if errors.Is(err, domain.ErrNotFound) {
		// Authenticated caller without a stored profile: synthesize one
		// from the token so the client still renders an account screen.
		return &domain.User{ID: caller.ID, Email: caller.Email, Role: caller.Role}, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, caller domain.Principal) ([]domain.User, error) {
	if caller.Role != domain.RoleMaster {
		return nil, domain.ErrPermissionDenied
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}
