package request

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
	ErrRequestNotFound     = errors.New("request not found")
	ErrNoRequestsFound     = errors.New("no requests found")
	ErrDonationNotFound    = errors.New("donation not found")
	ErrDonationUnavailable = errors.New("donation already picked up")
	ErrDuplicateRequest    = errors.New("charity already requested this donation")
	ErrRequestDecided      = errors.New("request already decided")
	ErrRequestNotPending   = errors.New("only pending requests can be canceled")
	ErrRequestNotAccepted  = errors.New("only accepted requests can be confirmed")
)

// uniqueViolation is the Postgres error code raised by the
// (donation_id, charity_email) unique index.
const uniqueViolation = "23505"

// Repository provides methods to interact with the donation_requests table.
//
// Every lifecycle transition (submit, decide, cancel, confirm) also writes
// the donation row it belongs to, so each runs in a single transaction on
// the master node. The donation row is locked first, which serializes
// competing transitions per donation.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new donation request repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateRequest inserts a pending claim request and marks the donation as
// requested by the charity.
//
// It returns ErrDonationNotFound if the donation does not exist,
// ErrDonationUnavailable if it has already been picked up, and
// ErrDuplicateRequest if the charity already has a request for it; under
// two concurrent submissions the unique index guarantees exactly one wins.
func (r *Repository) CreateRequest(ctx context.Context, req model.DonationRequest) (uuid.UUID, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var status string
	err = tx.QueryRowContext(ctx, `
		SELECT status
		FROM donations
		WHERE id = $1
		FOR UPDATE;
    `, req.DonationID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrDonationNotFound
		}

		return uuid.Nil, fmt.Errorf("failed to lock donation: %w", err)
	}

	// picked_up is terminal on the claim axis; a completed donation can
	// never be contested again.
	if status == string(model.DonationPickedUp) {
		return uuid.Nil, ErrDonationUnavailable
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO donation_requests (
		    donation_id, charity_name, charity_email, pickup_time, description
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `, req.DonationID, req.CharityName, req.CharityEmail, req.PickupTime, req.Description).Scan(&req.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrDuplicateRequest
		}

		return uuid.Nil, fmt.Errorf("failed to create request: %w", err)
	}

	// First interest marks the donation contested; further charities may
	// still submit their own pending requests.
	_, err = tx.ExecContext(ctx, `
		UPDATE donations
		SET status = 'requested', claimed_by = $1, updated_at = NOW()
		WHERE id = $2;
    `, req.CharityName, req.DonationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to update donation status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return req.ID, nil
}

// Decide applies an accept or reject decision to a pending request and
// returns the updated request plus the sibling requests that lost.
//
// Accepting locks the donation row and rejects every live sibling in the
// same transaction: pending siblings lose, and a previously accepted
// sibling is superseded and rejected alongside them, so at most one
// accepted request per donation can ever be observed. A request that has
// already been decided returns ErrRequestDecided. Rejecting touches only
// the request itself.
func (r *Repository) Decide(ctx context.Context, id uuid.UUID, decision model.RequestStatus) (model.DonationRequest, []model.DonationRequest, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.DonationRequest{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	req, err := lockRequest(ctx, tx, id)
	if err != nil {
		return model.DonationRequest{}, nil, err
	}

	if req.Status != model.RequestPending {
		return model.DonationRequest{}, nil, ErrRequestDecided
	}

	var losers []model.DonationRequest

	if decision == model.RequestAccepted {
		// Serializes concurrent decisions for the same donation.
		var one int
		err = tx.QueryRowContext(ctx, `
			SELECT 1 FROM donations WHERE id = $1 FOR UPDATE;
	    `, req.DonationID).Scan(&one)
		if err != nil {
			return model.DonationRequest{}, nil, fmt.Errorf("failed to lock donation: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE donation_requests
			SET status = 'accepted'
			WHERE id = $1;
	    `, id)
		if err != nil {
			return model.DonationRequest{}, nil, fmt.Errorf("failed to accept request: %w", err)
		}

		rows, err := tx.QueryContext(ctx, `
			UPDATE donation_requests
			SET status = 'rejected'
			WHERE donation_id = $1 AND id <> $2 AND status IN ('pending', 'accepted')
			RETURNING id, charity_name, charity_email;
	    `, req.DonationID, id)
		if err != nil {
			return model.DonationRequest{}, nil, fmt.Errorf("failed to reject sibling requests: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			loser := model.DonationRequest{
				DonationID: req.DonationID,
				Status:     model.RequestRejected,
			}
			if err := rows.Scan(&loser.ID, &loser.CharityName, &loser.CharityEmail); err != nil {
				return model.DonationRequest{}, nil, err
			}

			losers = append(losers, loser)
		}
		if err := rows.Err(); err != nil {
			return model.DonationRequest{}, nil, err
		}
	} else {
		_, err = tx.ExecContext(ctx, `
			UPDATE donation_requests
			SET status = 'rejected'
			WHERE id = $1;
	    `, id)
		if err != nil {
			return model.DonationRequest{}, nil, fmt.Errorf("failed to reject request: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.DonationRequest{}, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	req.Status = decision

	return req, losers, nil
}

// CancelRequest deletes a pending request and reverts the donation to
// available.
//
// The reversion is unconditional, even if other charities still have
// pending requests for the donation; those requests survive and can still
// be accepted.
func (r *Repository) CancelRequest(ctx context.Context, id uuid.UUID) (model.DonationRequest, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	req, err := lockRequest(ctx, tx, id)
	if err != nil {
		return model.DonationRequest{}, err
	}

	if req.Status != model.RequestPending {
		return model.DonationRequest{}, ErrRequestNotPending
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM donation_requests
		WHERE id = $1;
    `, id)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("failed to delete request: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE donations
		SET status = 'available', claimed_by = NULL, updated_at = NOW()
		WHERE id = $1;
    `, req.DonationID)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("failed to revert donation status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.DonationRequest{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return req, nil
}

// ConfirmPickup marks an accepted request and its donation as picked up.
// Terminal on the claim axis for both.
func (r *Repository) ConfirmPickup(ctx context.Context, id uuid.UUID) (model.DonationRequest, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	req, err := lockRequest(ctx, tx, id)
	if err != nil {
		return model.DonationRequest{}, err
	}

	if req.Status != model.RequestAccepted {
		return model.DonationRequest{}, ErrRequestNotAccepted
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE donation_requests
		SET status = 'picked_up'
		WHERE id = $1;
    `, id)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("failed to update request status: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE donations
		SET status = 'picked_up', updated_at = NOW()
		WHERE id = $1;
    `, req.DonationID)
	if err != nil {
		return model.DonationRequest{}, fmt.Errorf("failed to update donation status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.DonationRequest{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	req.Status = model.RequestPickedUp

	return req, nil
}

// GetRequestByID retrieves a single request by its ID, including the
// donation's donor so callers can check who may act on it.
func (r *Repository) GetRequestByID(ctx context.Context, id uuid.UUID) (model.DonationRequest, error) {
	query := `
		SELECT r.id, r.donation_id, d.title, d.donor_email, r.charity_name,
		       r.charity_email, r.pickup_time, r.description, r.status, r.created_at
		FROM donation_requests r
		JOIN donations d ON d.id = r.donation_id
		WHERE r.id = $1;
    `

	var req model.DonationRequest
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.DonationID, &req.DonationTitle, &req.DonorEmail, &req.CharityName,
		&req.CharityEmail, &req.PickupTime, &req.Description, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DonationRequest{}, ErrRequestNotFound
		}

		return model.DonationRequest{}, fmt.Errorf("failed to get request: %w", err)
	}

	return req, nil
}

// GetRequestsByDonation retrieves all requests for a donation, newest first.
func (r *Repository) GetRequestsByDonation(ctx context.Context, donationID uuid.UUID) ([]model.DonationRequest, error) {
	query := `
		SELECT r.id, r.donation_id, d.title, r.charity_name, r.charity_email,
		       r.pickup_time, r.description, r.status, r.created_at
		FROM donation_requests r
		JOIN donations d ON d.id = r.donation_id
		WHERE r.donation_id = $1
		ORDER BY r.created_at DESC;
    `

	return r.queryRequests(ctx, query, donationID)
}

// GetRequestsByCharity retrieves all requests a charity has submitted,
// newest first.
func (r *Repository) GetRequestsByCharity(ctx context.Context, charityEmail string) ([]model.DonationRequest, error) {
	query := `
		SELECT r.id, r.donation_id, d.title, r.charity_name, r.charity_email,
		       r.pickup_time, r.description, r.status, r.created_at
		FROM donation_requests r
		JOIN donations d ON d.id = r.donation_id
		WHERE r.charity_email = $1
		ORDER BY r.created_at DESC;
    `

	return r.queryRequests(ctx, query, charityEmail)
}

// lockRequest reads a request inside tx with FOR UPDATE so that competing
// transitions for the same request are serialized.
func lockRequest(ctx context.Context, tx *sql.Tx, id uuid.UUID) (model.DonationRequest, error) {
	var req model.DonationRequest
	err := tx.QueryRowContext(ctx, `
		SELECT id, donation_id, charity_name, charity_email,
		       pickup_time, description, status, created_at
		FROM donation_requests
		WHERE id = $1
		FOR UPDATE;
    `, id).Scan(
		&req.ID, &req.DonationID, &req.CharityName, &req.CharityEmail,
		&req.PickupTime, &req.Description, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DonationRequest{}, ErrRequestNotFound
		}

		return model.DonationRequest{}, fmt.Errorf("failed to lock request: %w", err)
	}

	return req, nil
}

func (r *Repository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]model.DonationRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get requests: %w", err)
	}
	defer rows.Close()

	var requests []model.DonationRequest
	for rows.Next() {
		var req model.DonationRequest
		if err := rows.Scan(
			&req.ID, &req.DonationID, &req.DonationTitle, &req.CharityName, &req.CharityEmail,
			&req.PickupTime, &req.Description, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, err
		}

		requests = append(requests, req)
	}

	if len(requests) == 0 {
		return nil, ErrNoRequestsFound
	}

	return requests, nil
}
