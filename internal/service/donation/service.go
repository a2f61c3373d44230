package donation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/donation/mock.go -package=mocks

type donationRepository interface {
	CreateDonation(ctx context.Context, d model.Donation) (uuid.UUID, error)
	GetDonationByID(ctx context.Context, id uuid.UUID) (model.Donation, error)
	GetDonations(ctx context.Context, filter model.DonationFilter) ([]model.Donation, error)
	GetAllDonations(ctx context.Context) ([]model.Donation, error)
	GetDonationsByDonor(ctx context.Context, donorEmail string) ([]model.Donation, error)
	GetDonationStatusByID(ctx context.Context, id uuid.UUID) (string, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, v model.Verification) error
	DeleteDonation(ctx context.Context, id uuid.UUID) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Service owns the donation collection outside the claim lifecycle:
// creation, listings, the admin verification axis and deletion. Claim
// status reads go through the Redis cache the arbitration engine keeps
// fresh.
type Service struct {
	repo  donationRepository
	cache cache
}

func NewService(repo donationRepository, cache cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) CreateDonation(ctx context.Context, strategy retry.Strategy, d model.Donation) (uuid.UUID, error) {
	id, err := s.repo.CreateDonation(ctx, d)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create donation: %w", err)
	}

	err = s.cache.SetWithRetry(ctx, strategy, id.String(), string(model.DonationAvailable))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache donation status")
	}

	return id, nil
}

func (s *Service) GetDonationByID(ctx context.Context, id uuid.UUID) (model.Donation, error) {
	d, err := s.repo.GetDonationByID(ctx, id)
	if err != nil {
		return model.Donation{}, fmt.Errorf("get donation: %w", err)
	}

	return d, nil
}

func (s *Service) GetDonations(ctx context.Context, filter model.DonationFilter) ([]model.Donation, error) {
	donations, err := s.repo.GetDonations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get donations: %w", err)
	}

	return donations, nil
}

func (s *Service) GetAllDonations(ctx context.Context) ([]model.Donation, error) {
	donations, err := s.repo.GetAllDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all donations: %w", err)
	}

	return donations, nil
}

func (s *Service) GetDonationsByDonor(ctx context.Context, donorEmail string) ([]model.Donation, error) {
	donations, err := s.repo.GetDonationsByDonor(ctx, donorEmail)
	if err != nil {
		return nil, fmt.Errorf("get donations by donor: %w", err)
	}

	return donations, nil
}

// GetDonationStatusByID returns the claim status, preferring the cache the
// arbitration engine maintains and falling back to the repository.
func (s *Service) GetDonationStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get donation status from cache")
	}

	if err != nil {
		status, err = s.repo.GetDonationStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get donation status: %w", err)
		}

		err = s.cache.SetWithRetry(ctx, strategy, id.String(), status)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache donation status")
		}
	}

	return status, nil
}

// SetVerification drives the admin verification axis. It never touches the
// claim status.
func (s *Service) SetVerification(ctx context.Context, id uuid.UUID, v model.Verification) error {
	if v != model.VerificationVerified && v != model.VerificationRejected {
		return fmt.Errorf("invalid verification status %q", v)
	}

	if err := s.repo.UpdateVerification(ctx, id, v); err != nil {
		return fmt.Errorf("update verification: %w", err)
	}

	return nil
}

func (s *Service) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteDonation(ctx, id); err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}

	if err := s.cache.Del(ctx, id.String()).Err(); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to drop cached donation status")
	}

	return nil
}
