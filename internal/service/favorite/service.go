package favorite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

type favoriteRepository interface {
	AddFavorite(ctx context.Context, f model.Favorite) (uuid.UUID, error)
	GetFavoritesByUser(ctx context.Context, userEmail string) ([]model.Favorite, error)
	RemoveFavorite(ctx context.Context, id uuid.UUID, userEmail string) error
}

// Service handles user favorites. Plain CRUD, no cross-entity invariants.
type Service struct {
	repo favoriteRepository
}

func NewService(repo favoriteRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddFavorite(ctx context.Context, f model.Favorite) (uuid.UUID, error) {
	id, err := s.repo.AddFavorite(ctx, f)
	if err != nil {
		return uuid.Nil, fmt.Errorf("add favorite: %w", err)
	}

	return id, nil
}

func (s *Service) GetFavoritesByUser(ctx context.Context, userEmail string) ([]model.Favorite, error) {
	favorites, err := s.repo.GetFavoritesByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	return favorites, nil
}

func (s *Service) RemoveFavorite(ctx context.Context, id uuid.UUID, userEmail string) error {
	if err := s.repo.RemoveFavorite(ctx, id, userEmail); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	return nil
}
