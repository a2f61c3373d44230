package arbitration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
	"github.com/niloyahmadramjan/surplusshare-server/internal/rabbitmq/queue"
)

// ErrInvalidDecision is returned when a decision is neither accepted nor
// rejected.
var ErrInvalidDecision = errors.New("decision must be accepted or rejected")

//go:generate mockgen -source=service.go -destination=../../mocks/service/arbitration/mock.go -package=mocks

type requestRepository interface {
	CreateRequest(ctx context.Context, req model.DonationRequest) (uuid.UUID, error)
	Decide(ctx context.Context, id uuid.UUID, decision model.RequestStatus) (model.DonationRequest, []model.DonationRequest, error)
	CancelRequest(ctx context.Context, id uuid.UUID) (model.DonationRequest, error)
	ConfirmPickup(ctx context.Context, id uuid.UUID) (model.DonationRequest, error)
	GetRequestByID(ctx context.Context, id uuid.UUID) (model.DonationRequest, error)
	GetRequestsByDonation(ctx context.Context, donationID uuid.UUID) ([]model.DonationRequest, error)
	GetRequestsByCharity(ctx context.Context, charityEmail string) ([]model.DonationRequest, error)
}

type decisionPublisher interface {
	Publish(msg queue.DecisionMessage, strategy retry.Strategy) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Service is the request arbitration engine. It drives every claim
// lifecycle transition through the repository's transactional operations,
// keeps the cached donation claim status fresh and emits a decision event
// for the notification pipeline after each committed transition.
//
// Cache and queue failures are logged, never surfaced: a transition that
// committed has happened regardless of what the side channels did.
type Service struct {
	repo  requestRepository
	queue decisionPublisher
	cache cache
}

func NewService(repo requestRepository, queue decisionPublisher, cache cache) *Service {
	return &Service{repo: repo, queue: queue, cache: cache}
}

// SubmitRequest files a charity's claim on a donation. The donation moves
// to requested; further charities may still submit their own requests.
func (s *Service) SubmitRequest(ctx context.Context, strategy retry.Strategy, req model.DonationRequest) (uuid.UUID, error) {
	id, err := s.repo.CreateRequest(ctx, req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create request: %w", err)
	}

	req.ID = id
	req.Status = model.RequestPending

	s.cacheDonationStatus(ctx, strategy, req.DonationID, model.DonationRequested)
	s.publish(strategy, req, "submitted")

	return id, nil
}

// DecideRequest applies the donor's or admin's decision. Accepting a
// request rejects every competing request for the same donation; each
// loser gets its own decision event.
func (s *Service) DecideRequest(ctx context.Context, strategy retry.Strategy, id uuid.UUID, decision model.RequestStatus) (model.DonationRequest, error) {
	if decision != model.RequestAccepted && decision != model.RequestRejected {
		return model.DonationRequest{}, ErrInvalidDecision
	}

	req, losers, err := s.repo.Decide(ctx, id, decision)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("decide request: %w", err)
	}

	s.publish(strategy, req, string(decision))

	for _, loser := range losers {
		s.publish(strategy, loser, string(model.RequestRejected))
	}

	return req, nil
}

// CancelRequest withdraws a pending request. The donation reverts to
// available and its cached status follows.
func (s *Service) CancelRequest(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	req, err := s.repo.CancelRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel request: %w", err)
	}

	s.cacheDonationStatus(ctx, strategy, req.DonationID, model.DonationAvailable)

	return nil
}

// ConfirmPickup completes the lifecycle: the accepted request and its
// donation both become picked up.
func (s *Service) ConfirmPickup(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.DonationRequest, error) {
	req, err := s.repo.ConfirmPickup(ctx, id)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("confirm pickup: %w", err)
	}

	s.cacheDonationStatus(ctx, strategy, req.DonationID, model.DonationPickedUp)
	s.publish(strategy, req, string(model.RequestPickedUp))

	return req, nil
}

// GetRequest retrieves a single claim request by its ID.
func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (model.DonationRequest, error) {
	req, err := s.repo.GetRequestByID(ctx, id)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("get request: %w", err)
	}

	return req, nil
}

// GetRequestsByDonation lists every claim filed against a donation.
func (s *Service) GetRequestsByDonation(ctx context.Context, donationID uuid.UUID) ([]model.DonationRequest, error) {
	requests, err := s.repo.GetRequestsByDonation(ctx, donationID)
	if err != nil {
		return nil, fmt.Errorf("get requests by donation: %w", err)
	}

	return requests, nil
}

// GetRequestsByCharity lists every claim a charity has filed.
func (s *Service) GetRequestsByCharity(ctx context.Context, charityEmail string) ([]model.DonationRequest, error) {
	requests, err := s.repo.GetRequestsByCharity(ctx, charityEmail)
	if err != nil {
		return nil, fmt.Errorf("get requests by charity: %w", err)
	}

	return requests, nil
}

func (s *Service) cacheDonationStatus(ctx context.Context, strategy retry.Strategy, donationID uuid.UUID, status model.DonationStatus) {
	err := s.cache.SetWithRetry(ctx, strategy, donationID.String(), string(status))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("donation_id", donationID.String()).Msg("failed to cache donation status")
	}
}

func (s *Service) publish(strategy retry.Strategy, req model.DonationRequest, outcome string) {
	msg := queue.DecisionMessage{
		RequestID:     req.ID,
		DonationID:    req.DonationID,
		DonationTitle: req.DonationTitle,
		CharityName:   req.CharityName,
		CharityEmail:  req.CharityEmail,
		Outcome:       outcome,
		Channel:       "email",
		DecidedAt:     time.Now().UTC(),
	}

	if err := s.queue.Publish(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("request_id", req.ID.String()).Msg("failed to publish decision")
	}
}
