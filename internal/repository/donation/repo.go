package donation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrNoDonationsFound = errors.New("no donations found")
	ErrDonationClaimed  = errors.New("donation has active requests")
)

const donationColumns = `
	id, title, description, image_url, donor_name, donor_email,
	location, quantity, food_type, pickup_window,
	status, verification, COALESCE(claimed_by, ''), created_at, updated_at
`

// Repository provides methods to interact with the donations table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new donation repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateDonation inserts a new donation and returns its ID. New donations
// start available on the claim axis and pending on the verification axis.
func (r *Repository) CreateDonation(ctx context.Context, d model.Donation) (uuid.UUID, error) {
	query := `
		INSERT INTO donations (
		    title, description, image_url, donor_name, donor_email,
		    location, quantity, food_type, pickup_window
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		d.Title, d.Description, d.ImageURL, d.DonorName, d.DonorEmail,
		d.Location, d.Quantity, d.FoodType, d.PickupWindow,
	).Scan(&d.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create donation: %w", err)
	}

	return d.ID, nil
}

// GetDonationByID retrieves a single donation by its ID.
func (r *Repository) GetDonationByID(ctx context.Context, id uuid.UUID) (model.Donation, error) {
	query := `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE id = $1;
    `

	d, err := scanDonation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Donation{}, ErrDonationNotFound
		}

		return model.Donation{}, fmt.Errorf("failed to get donation: %w", err)
	}

	return d, nil
}

// GetDonations retrieves verified donations for the public listing,
// optionally narrowed by food type and location.
func (r *Repository) GetDonations(ctx context.Context, filter model.DonationFilter) ([]model.Donation, error) {
	query := `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE verification = 'verified'
		  AND ($1 = '' OR food_type = $1)
		  AND ($2 = '' OR location = $2)
		ORDER BY created_at DESC;
    `

	return r.queryDonations(ctx, query, filter.FoodType, filter.Location)
}

// GetAllDonations retrieves every donation regardless of verification.
// Admin listing.
func (r *Repository) GetAllDonations(ctx context.Context) ([]model.Donation, error) {
	query := `
		SELECT ` + donationColumns + `
		FROM donations
		ORDER BY created_at DESC;
    `

	return r.queryDonations(ctx, query)
}

// GetDonationsByDonor retrieves all donations listed by a donor.
func (r *Repository) GetDonationsByDonor(ctx context.Context, donorEmail string) ([]model.Donation, error) {
	query := `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE donor_email = $1
		ORDER BY created_at DESC;
    `

	return r.queryDonations(ctx, query, donorEmail)
}

// GetDonationStatusByID retrieves the claim status of a donation.
func (r *Repository) GetDonationStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM donations
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDonationNotFound
		}

		return "", fmt.Errorf("failed to get donation status: %w", err)
	}

	return status, nil
}

// UpdateVerification sets the admin verification axis of a donation. It
// never touches the claim status.
func (r *Repository) UpdateVerification(ctx context.Context, id uuid.UUID, v model.Verification) error {
	query := `
		UPDATE donations
		SET verification = $1, updated_at = NOW()
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, v, id)
	if err != nil {
		return fmt.Errorf("failed to update verification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrDonationNotFound
	}

	return nil
}

// DeleteDonation removes a donation unless a pending or accepted request
// still references it.
func (r *Repository) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM donations
		WHERE id = $1
		  AND NOT EXISTS (
		    SELECT 1 FROM donation_requests
		    WHERE donation_id = $1 AND status IN ('pending', 'accepted')
		  );
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete donation: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return nil
	}

	var exists bool
	err = r.db.QueryRowContext(
		ctx, `SELECT EXISTS (SELECT 1 FROM donations WHERE id = $1);`, id,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check donation existence: %w", err)
	}

	if exists {
		return ErrDonationClaimed
	}

	return ErrDonationNotFound
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDonation(row rowScanner) (model.Donation, error) {
	var d model.Donation
	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.ImageURL, &d.DonorName, &d.DonorEmail,
		&d.Location, &d.Quantity, &d.FoodType, &d.PickupWindow,
		&d.Status, &d.Verification, &d.ClaimedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (r *Repository) queryDonations(ctx context.Context, query string, args ...interface{}) ([]model.Donation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get donations: %w", err)
	}
	defer rows.Close()

	var donations []model.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}

		donations = append(donations, d)
	}

	if len(donations) == 0 {
		return nil, ErrNoDonationsFound
	}

	return donations, nil
}
