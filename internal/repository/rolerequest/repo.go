package rolerequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

var (
	ErrRoleRequestNotFound  = errors.New("role request not found")
	ErrNoRoleRequestsFound  = errors.New("no role requests found")
	ErrDuplicateRoleRequest = errors.New("user already has a role request")
)

const uniqueViolation = "23505"

// Repository provides methods to interact with the charity_role_requests table.
type Repository struct {
	db *dbpg.DB
}

func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateRoleRequest inserts a charity upgrade request. One per email.
func (r *Repository) CreateRoleRequest(ctx context.Context, rr model.CharityRoleRequest) (uuid.UUID, error) {
	query := `
		INSERT INTO charity_role_requests (
		    user_name, user_email, organization, mission
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, rr.UserName, rr.UserEmail, rr.Organization, rr.Mission,
	).Scan(&rr.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrDuplicateRoleRequest
		}

		return uuid.Nil, fmt.Errorf("failed to create role request: %w", err)
	}

	return rr.ID, nil
}

// GetRoleRequestByEmail retrieves the role request of a user, if any.
func (r *Repository) GetRoleRequestByEmail(ctx context.Context, email string) (model.CharityRoleRequest, error) {
	query := `
		SELECT id, user_name, user_email, organization, mission, status, created_at
		FROM charity_role_requests
		WHERE user_email = $1;
    `

	var rr model.CharityRoleRequest
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&rr.ID, &rr.UserName, &rr.UserEmail, &rr.Organization, &rr.Mission, &rr.Status, &rr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CharityRoleRequest{}, ErrRoleRequestNotFound
		}

		return model.CharityRoleRequest{}, fmt.Errorf("failed to get role request: %w", err)
	}

	return rr, nil
}

// GetAllRoleRequests retrieves every role request, newest first. Admin listing.
func (r *Repository) GetAllRoleRequests(ctx context.Context) ([]model.CharityRoleRequest, error) {
	query := `
		SELECT id, user_name, user_email, organization, mission, status, created_at
		FROM charity_role_requests
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get role requests: %w", err)
	}
	defer rows.Close()

	var requests []model.CharityRoleRequest
	for rows.Next() {
		var rr model.CharityRoleRequest
		if err := rows.Scan(
			&rr.ID, &rr.UserName, &rr.UserEmail, &rr.Organization, &rr.Mission, &rr.Status, &rr.CreatedAt,
		); err != nil {
			return nil, err
		}

		requests = append(requests, rr)
	}

	if len(requests) == 0 {
		return nil, ErrNoRoleRequestsFound
	}

	return requests, nil
}

// UpdateStatus sets the decision on a role request and returns the email
// of the user it belongs to.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RoleRequestStatus) (string, error) {
	query := `
		UPDATE charity_role_requests
		SET status = $1
		WHERE id = $2
		RETURNING user_email;
    `

	var userEmail string
	err := r.db.QueryRowContext(ctx, query, status, id).Scan(&userEmail)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRoleRequestNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to update role request: %w", err)
	}

	return userEmail, nil
}
