package user

import (
	"context"
	"fmt"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

type userRepository interface {
	UpsertUser(ctx context.Context, u model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateRole(ctx context.Context, email, role string) error
}

// Service maintains local profiles for externally authenticated principals.
type Service struct {
	repo userRepository
}

func NewService(repo userRepository) *Service {
	return &Service{repo: repo}
}

// UpsertUser is called on every login with the verified token's identity.
func (s *Service) UpsertUser(ctx context.Context, u model.User) error {
	if u.Role == "" {
		u.Role = model.RoleUser
	}

	if err := s.repo.UpsertUser(ctx, u); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

func (s *Service) UpdateRole(ctx context.Context, email, role string) error {
	if err := s.repo.UpdateRole(ctx, email, role); err != nil {
		return fmt.Errorf("update user role: %w", err)
	}

	return nil
}
