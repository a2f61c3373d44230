package rolerequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

// ErrInvalidRoleDecision is returned when a decision is neither approved
// nor rejected.
var ErrInvalidRoleDecision = errors.New("decision must be approved or rejected")

type roleRequestRepository interface {
	CreateRoleRequest(ctx context.Context, rr model.CharityRoleRequest) (uuid.UUID, error)
	GetRoleRequestByEmail(ctx context.Context, email string) (model.CharityRoleRequest, error)
	GetAllRoleRequests(ctx context.Context) ([]model.CharityRoleRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RoleRequestStatus) (string, error)
}

type userRoleUpdater interface {
	UpdateRole(ctx context.Context, email, role string) error
}

// Service runs the charity upgrade workflow: a user applies, an admin
// decides, approval grants the charity role.
type Service struct {
	repo  roleRequestRepository
	users userRoleUpdater
}

func NewService(repo roleRequestRepository, users userRoleUpdater) *Service {
	return &Service{repo: repo, users: users}
}

func (s *Service) CreateRoleRequest(ctx context.Context, rr model.CharityRoleRequest) (uuid.UUID, error) {
	id, err := s.repo.CreateRoleRequest(ctx, rr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create role request: %w", err)
	}

	return id, nil
}

func (s *Service) GetRoleRequestByEmail(ctx context.Context, email string) (model.CharityRoleRequest, error) {
	rr, err := s.repo.GetRoleRequestByEmail(ctx, email)
	if err != nil {
		return model.CharityRoleRequest{}, fmt.Errorf("get role request: %w", err)
	}

	return rr, nil
}

func (s *Service) GetAllRoleRequests(ctx context.Context) ([]model.CharityRoleRequest, error) {
	requests, err := s.repo.GetAllRoleRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("get role requests: %w", err)
	}

	return requests, nil
}

// DecideRoleRequest records the admin decision; approval also upgrades the
// user to the charity role.
func (s *Service) DecideRoleRequest(ctx context.Context, id uuid.UUID, decision model.RoleRequestStatus) error {
	if decision != model.RoleRequestApproved && decision != model.RoleRequestRejected {
		return ErrInvalidRoleDecision
	}

	userEmail, err := s.repo.UpdateStatus(ctx, id, decision)
	if err != nil {
		return fmt.Errorf("update role request: %w", err)
	}

	if decision == model.RoleRequestApproved {
		if err := s.users.UpdateRole(ctx, userEmail, model.RoleCharity); err != nil {
			return fmt.Errorf("grant charity role: %w", err)
		}
	}

	return nil
}
