package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

type reviewRepository interface {
	CreateReview(ctx context.Context, rev model.Review) (uuid.UUID, error)
	GetReviewsByDonation(ctx context.Context, donationID uuid.UUID) ([]model.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID, reviewerEmail string) error
}

// Service handles donation reviews. Plain CRUD, no cross-entity invariants.
type Service struct {
	repo reviewRepository
}

func NewService(repo reviewRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateReview(ctx context.Context, rev model.Review) (uuid.UUID, error) {
	id, err := s.repo.CreateReview(ctx, rev)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create review: %w", err)
	}

	return id, nil
}

func (s *Service) GetReviewsByDonation(ctx context.Context, donationID uuid.UUID) ([]model.Review, error) {
	reviews, err := s.repo.GetReviewsByDonation(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	return reviews, nil
}

func (s *Service) DeleteReview(ctx context.Context, id uuid.UUID, reviewerEmail string) error {
	if err := s.repo.DeleteReview(ctx, id, reviewerEmail); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}
